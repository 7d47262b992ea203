package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/okian/lineout/internal/domain/types"
)

// AttendanceDependencies defines the interface for attendance reads and
// manual marking.
type AttendanceDependencies interface {
	SessionDates(ctx context.Context) ([]string, error)
	Daily(ctx context.Context, day time.Time) (types.Breakdown, error)
	MarkPresent(ctx context.Context, names []string) ([]types.Mark, error)
	FormURL() string
}

// AttendanceHandler handles attendance requests.
type AttendanceHandler struct {
	deps AttendanceDependencies
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(deps AttendanceDependencies) *AttendanceHandler {
	return &AttendanceHandler{deps: deps}
}

// markRequest mirrors the OpenAPI schema for POST /attendance.
type markRequest struct {
	Names []string `json:"names" validate:"required,min=1,max=100,dive,required"`
}

type markResponse struct {
	Results    []types.Mark `json:"results"`
	Recorded   int          `json:"recorded"`
	Duplicates int          `json:"duplicates"`
	Failed     int          `json:"failed"`
}

type datesResponse struct {
	Dates []string `json:"dates"`
}

type formResponse struct {
	URL string `json:"url"`
}

// HandleMarkPresent handles POST /attendance requests. The response is 503
// when any name could not be written.
func (h *AttendanceHandler) HandleMarkPresent(w http.ResponseWriter, r *http.Request) {
	const op = "api.mark_present"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	var req markRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("names must be a non-empty list of non-empty names")))
		return
	}

	marks, err := h.deps.MarkPresent(ctx, req.Names)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	resp := markResponse{Results: marks}
	for _, m := range marks {
		switch m.Outcome {
		case types.Recorded:
			resp.Recorded++
		case types.Duplicate:
			resp.Duplicates++
		case types.Failed:
			resp.Failed++
		}
	}
	status := http.StatusOK
	if resp.Failed > 0 {
		status = http.StatusServiceUnavailable
	}
	writeJSON(ctx, w, status, resp)
}

// HandleSessionDates handles GET /attendance/dates requests.
func (h *AttendanceHandler) HandleSessionDates(w http.ResponseWriter, r *http.Request) {
	const op = "api.session_dates"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	ds, err := h.deps.SessionDates(ctx)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, datesResponse{Dates: ds})
}

// HandleDaily handles GET /attendance/daily?date= requests.
func (h *AttendanceHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	const op = "api.daily"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	day, ok, err := queryDay(r)
	if err == nil && !ok {
		err = errors.New("missing date")
	}
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	b, err := h.deps.Daily(ctx, day)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, b)
}

// HandleForm handles GET /attendance/form requests.
func (h *AttendanceHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	const op = "api.form"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	url := h.deps.FormURL()
	if url == "" {
		writeError(ctx, w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, errors.New("form url not configured")))
		return
	}
	writeJSON(ctx, w, http.StatusOK, formResponse{URL: url})
}
