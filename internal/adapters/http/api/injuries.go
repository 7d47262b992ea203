package api

import (
	"context"
	"net/http"

	"github.com/okian/lineout/internal/domain/types"
)

// InjuryDependencies defines the interface for injury reads.
type InjuryDependencies interface {
	Injuries(ctx context.Context) ([]types.Injury, error)
}

// InjuriesHandler handles injury requests.
type InjuriesHandler struct {
	deps InjuryDependencies
}

// NewInjuriesHandler creates a new injuries handler.
func NewInjuriesHandler(deps InjuryDependencies) *InjuriesHandler {
	return &InjuriesHandler{deps: deps}
}

type injuriesResponse struct {
	Injuries []types.Injury `json:"injuries"`
}

// HandleListInjuries handles GET /injuries requests.
func (h *InjuriesHandler) HandleListInjuries(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_injuries"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	inj, err := h.deps.Injuries(ctx)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, injuriesResponse{Injuries: inj})
}
