package handler

import (
	"net/http"
	"strconv"

	"github.com/gridironlab/fantasy-data/internal/api/respond"
)

// ResolvePlayers maps Sleeper player ids to names, positions, and teams.
// @Summary Resolve Sleeper player ids
// @Description Returns one player record per requested id, in request order.
// @Tags players
// @Produce json
// @Param ids query string true "Comma-separated Sleeper player ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/players/resolve [get]
func (h *Handler) ResolvePlayers(w http.ResponseWriter, r *http.Request) {
	ids := csvParam(r.URL.Query(), "ids")
	if len(ids) == 0 {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_IDS", "ids parameter is required")
		return
	}

	players, err := h.resolver.Resolve(r.Context(), ids)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "RESOLVE_FAILED", "Player lookup failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"players": players,
	})
}

// PlayerDeepDive assembles the full analytics bundle for one player.
// @Summary Player deep dive
// @Description Returns bio, seasonal stats, percentiles, consistency, game log, and usage trends.
// @Tags players
// @Produce json
// @Param name query string true "Player name"
// @Param weeks query int false "Recent weeks for the game log (1-18, default 5)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/players/deepdive [get]
func (h *Handler) PlayerDeepDive(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	weeks := 0
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "weeks must be an integer")
			return
		}
		weeks = n
	}

	dive, err := h.bundles.PlayerDeepDive(r.Context(), name, weeks)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, dive)
}
