package api

import (
	"context"
	"net/http"
	"time"

	"github.com/okian/lineout/internal/domain/types"
)

// DashboardDependencies defines the interface for the dashboard view.
type DashboardDependencies interface {
	Dashboard(ctx context.Context, day time.Time) (types.Dashboard, error)
}

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	deps DashboardDependencies
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps DashboardDependencies) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// HandleDashboard handles GET /dashboard?date=YYYY-MM-DD requests. Without a
// date the newest session is broken down.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	day, _, err := queryDay(r)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	d, err := h.deps.Dashboard(ctx, day)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, d)
}
