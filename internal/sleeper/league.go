package sleeper

import (
	"context"
	"fmt"
	"net/url"
)

// User is a Sleeper account.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// League is one fantasy league in a given season.
type League struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	SeasonType      string             `json:"season_type"`
	Status          string             `json:"status"`
	Sport           string             `json:"sport"`
	TotalRosters    int                `json:"total_rosters"`
	DraftID         string             `json:"draft_id"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
}

// RosterSettings carries a roster's record and points.
type RosterSettings struct {
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Ties          int `json:"ties"`
	FPts          int `json:"fpts"`
	FPtsAgainst   int `json:"fpts_against"`
	WaiverBudget  int `json:"waiver_budget_used"`
	WaiverPostion int `json:"waiver_position"`
}

// Roster is one team's roster within a league. Players and Starters hold
// platform player ids; team defenses appear as team abbreviations ("HOU").
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings RosterSettings `json:"settings"`
}

// LeagueUser is a league member, possibly with a custom team name.
type LeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

// TeamName returns the custom team name, falling back to the display name.
func (u LeagueUser) TeamName() string {
	if u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	return u.DisplayName
}

// Matchup is one roster's side of a weekly head-to-head matchup. Rosters
// sharing a MatchupID play each other.
type Matchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Points    float64  `json:"points"`
	Players   []string `json:"players"`
	Starters  []string `json:"starters"`
}

// TrendingPlayer is an add/drop trending entry.
type TrendingPlayer struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// GetUser fetches a user by exact username or user id.
func (c *Client) GetUser(ctx context.Context, username string) (User, error) {
	return fetch[User](ctx, c, "user", "/user/"+url.PathEscape(username))
}

// GetLeaguesForUser fetches all of a user's leagues for a sport and season.
func (c *Client) GetLeaguesForUser(ctx context.Context, userID, sport string, season int) ([]League, error) {
	path := fmt.Sprintf("/user/%s/leagues/%s/%d", url.PathEscape(userID), url.PathEscape(sport), season)
	return fetch[[]League](ctx, c, "leagues", path)
}

// GetRosters fetches all rosters in a league.
func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	return fetch[[]Roster](ctx, c, "rosters", "/league/"+url.PathEscape(leagueID)+"/rosters")
}

// GetLeagueUsers fetches the members of a league.
func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]LeagueUser, error) {
	return fetch[[]LeagueUser](ctx, c, "league_users", "/league/"+url.PathEscape(leagueID)+"/users")
}

// GetMatchups fetches a league's matchups for one week.
func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	path := fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	return fetch[[]Matchup](ctx, c, "matchups", path)
}

// GetTrendingPlayers fetches trending adds or drops. kind is "add" or
// "drop"; lookbackHours and limit fall back to the API defaults when zero.
func (c *Client) GetTrendingPlayers(ctx context.Context, kind string, lookbackHours, limit int) ([]TrendingPlayer, error) {
	path := "/players/nfl/trending/" + url.PathEscape(kind)
	q := url.Values{}
	if lookbackHours > 0 {
		q.Set("lookback_hours", fmt.Sprint(lookbackHours))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return fetch[[]TrendingPlayer](ctx, c, "trending", path)
}
