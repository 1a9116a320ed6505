package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gridironlab/fantasy-data/internal/api/respond"
	"github.com/gridironlab/fantasy-data/internal/config"
)

// GetUserLeagues lists a Sleeper user's leagues for a season.
// @Summary List a user's leagues
// @Tags league
// @Produce json
// @Param username path string true "Sleeper username"
// @Param season query int false "Season (defaults to current)"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/users/{username}/leagues [get]
func (h *Handler) GetUserLeagues(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	season := config.CurrentSeason
	if raw := r.URL.Query().Get("season"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "season must be an integer")
			return
		}
		season = n
	}

	user, err := h.sleeper.GetUser(r.Context(), username)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Sleeper user lookup failed")
		return
	}

	leagues, err := h.sleeper.GetLeaguesForUser(r.Context(), user.UserID, "nfl", season)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Sleeper league lookup failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"season":  season,
		"leagues": leagues,
	})
}

// GetLeagueRosters returns every roster in a league with resolved players.
// @Summary League rosters
// @Tags league
// @Produce json
// @Param leagueID path string true "Sleeper league id"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{leagueID}/rosters [get]
func (h *Handler) GetLeagueRosters(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	rosters, err := h.bundles.LeagueRosters(r.Context(), leagueID)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "League roster fetch failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"rosters":   rosters,
	})
}

// GetLeagueUsers returns the members of a league.
// @Summary League members
// @Tags league
// @Produce json
// @Param leagueID path string true "Sleeper league id"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{leagueID}/users [get]
func (h *Handler) GetLeagueUsers(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	users, err := h.sleeper.GetLeagueUsers(r.Context(), leagueID)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "League user fetch failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"users":     users,
	})
}

// GetLeagueMatchups returns one week's matchups with resolved starters.
// @Summary League matchups
// @Tags league
// @Produce json
// @Param leagueID path string true "Sleeper league id"
// @Param week path int true "Week number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{leagueID}/matchups/{week} [get]
func (h *Handler) GetLeagueMatchups(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > 18 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "week must be between 1 and 18")
		return
	}

	matchups, err := h.bundles.LeagueMatchups(r.Context(), leagueID, week)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "League matchup fetch failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"week":      week,
		"matchups":  matchups,
	})
}

// GetTrendingPlayers returns trending adds or drops with resolved names.
// @Summary Trending players
// @Tags league
// @Produce json
// @Param kind query string false "add or drop (default add)"
// @Param lookback_hours query int false "Lookback window in hours (default 24)"
// @Param limit query int false "Max players (default 25)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/players/trending [get]
func (h *Handler) GetTrendingPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind := q.Get("kind")
	if kind == "" {
		kind = "add"
	}
	if kind != "add" && kind != "drop" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "kind must be add or drop")
		return
	}

	lookback := 24
	if raw := q.Get("lookback_hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "lookback_hours must be a positive integer")
			return
		}
		lookback = n
	}

	limit := 25
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", "limit must be a positive integer")
			return
		}
		limit = n
	}

	trending, err := h.sleeper.GetTrendingPlayers(r.Context(), kind, lookback, limit)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Trending player fetch failed")
		return
	}

	ids := make([]string, 0, len(trending))
	for _, t := range trending {
		ids = append(ids, t.PlayerID)
	}
	players, err := h.resolver.Resolve(r.Context(), ids)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "RESOLVE_FAILED", "Player lookup failed")
		return
	}

	out := make([]map[string]interface{}, len(trending))
	for i, t := range trending {
		out[i] = map[string]interface{}{
			"player": players[i],
			"count":  t.Count,
		}
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"kind":    kind,
		"players": out,
	})
}
