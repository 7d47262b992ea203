// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	service "github.com/okian/lineout/internal/app"
	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	DashboardDependencies
	PlayerDependencies
	AttendanceDependencies
	InjuryDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	dashboardHandler  *DashboardHandler
	playersHandler    *PlayersHandler
	attendanceHandler *AttendanceHandler
	injuriesHandler   *InjuriesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		dashboardHandler:  NewDashboardHandler(deps),
		playersHandler:    NewPlayersHandler(deps),
		attendanceHandler: NewAttendanceHandler(deps),
		injuriesHandler:   NewInjuriesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleListPlayers, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandleGetPlayer, "player"))
	mux.HandleFunc("/attendance", MetricsMiddleware(s.attendanceHandler.HandleMarkPresent, "attendance"))
	mux.HandleFunc("/attendance/dates", MetricsMiddleware(s.attendanceHandler.HandleSessionDates, "attendance_dates"))
	mux.HandleFunc("/attendance/daily", MetricsMiddleware(s.attendanceHandler.HandleDaily, "attendance_daily"))
	mux.HandleFunc("/attendance/form", MetricsMiddleware(s.attendanceHandler.HandleForm, "attendance_form"))
	mux.HandleFunc("/injuries", MetricsMiddleware(s.injuriesHandler.HandleListInjuries, "injuries"))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		logger.Get().Error(ctx, "encode response", logger.Error(WrapKind("api.write_json", ErrEncode, err)))
		status = http.StatusInternalServerError
		body = []byte(`{"code":"internal_error","message":"encode response failed"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(ctx, w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service errors into status codes.
func writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		writeError(ctx, w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, service.ErrNotStarted):
		writeError(ctx, w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
	default:
		logger.Get().Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// queryDay parses the date query parameter. ok is false when it is absent.
func queryDay(r *http.Request) (day time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return time.Time{}, false, nil
	}
	day, valid := dates.Parse(raw)
	if !valid {
		return time.Time{}, true, errors.Newf("invalid date %q", raw)
	}
	return day, true, nil
}
