package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/lineout/internal/domain/types"
)

// PlayerDependencies defines the interface for roster reads.
type PlayerDependencies interface {
	Players(ctx context.Context) ([]types.PlayerRow, error)
	Player(ctx context.Context, name string) (types.PlayerDetail, error)
}

// PlayersHandler handles roster requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type playersResponse struct {
	Players []types.PlayerRow `json:"players"`
}

// HandleListPlayers handles GET /players requests.
func (h *PlayersHandler) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	rows, err := h.deps.Players(ctx)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, playersResponse{Players: rows})
}

// HandleGetPlayer handles GET /players/{name} requests.
func (h *PlayersHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	name := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/players/"))
	if name == "" || strings.Contains(name, "/") {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	p, err := h.deps.Player(ctx, name)
	if err != nil {
		writeServiceError(ctx, w, op, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, p)
}
