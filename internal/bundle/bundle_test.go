package bundle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlab/fantasy-data/internal/query"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

type fakeRunner struct {
	rows map[string][]query.Row // keyed by table name substring
	err  error
}

func (f *fakeRunner) Select(_ context.Context, sql string, _ []any) ([]query.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	for table, rows := range f.rows {
		if strings.Contains(sql, table) {
			return rows, nil
		}
	}
	return []query.Row{}, nil
}

type fakeResolver struct {
	calls [][]string
}

func (f *fakeResolver) Resolve(_ context.Context, ids []string) ([]resolve.Player, error) {
	f.calls = append(f.calls, ids)
	out := make([]resolve.Player, len(ids))
	for i, id := range ids {
		out[i] = resolve.Player{Name: "Player " + id, Position: "WR", Team: "MIN"}
	}
	return out, nil
}

type fakeLeague struct {
	rosters  []sleeper.Roster
	users    []sleeper.LeagueUser
	matchups []sleeper.Matchup
	err      error
}

func (f *fakeLeague) GetRosters(context.Context, string) ([]sleeper.Roster, error) {
	return f.rosters, f.err
}

func (f *fakeLeague) GetLeagueUsers(context.Context, string) ([]sleeper.LeagueUser, error) {
	return f.users, f.err
}

func (f *fakeLeague) GetMatchups(context.Context, string, int) ([]sleeper.Matchup, error) {
	return f.matchups, f.err
}

func leagueUser(id, name, teamName string) sleeper.LeagueUser {
	u := sleeper.LeagueUser{UserID: id, DisplayName: name}
	u.Metadata.TeamName = teamName
	return u
}

func TestPlayerDeepDiveAssemblesSections(t *testing.T) {
	runner := &fakeRunner{rows: map[string][]query.Row{
		"vw_advanced_receiving_analytics": {{"player_name": "Justin Jefferson", "targets": 150}},
		"mv_player_id_lookup":             {{"display_name": "Justin Jefferson"}},
	}}
	s := NewService(runner, &fakeResolver{}, &fakeLeague{}, 4, nil)

	got, err := s.PlayerDeepDive(context.Background(), "Justin Jefferson", 5)
	require.NoError(t, err)

	assert.Equal(t, "Justin Jefferson", got["playerName"])
	assert.Equal(t, 5, got["recentWeeks"])
	assert.Contains(t, got, "playerInfo")
	assert.Contains(t, got, "advReceivingStats")
	assert.Contains(t, got, "advPassingStats")
	assert.Contains(t, got, "consistency")
	assert.Contains(t, got, "gameLog")
	assert.Contains(t, got, "usageTrends")
}

func TestPlayerDeepDiveToleratesSectionFailure(t *testing.T) {
	s := NewService(&fakeRunner{err: errors.New("warehouse down")}, &fakeResolver{}, &fakeLeague{}, 4, nil)

	got, err := s.PlayerDeepDive(context.Background(), "Justin Jefferson", 5)
	require.NoError(t, err, "section failures degrade, they do not fail the bundle")
	assert.NotContains(t, got, "advReceivingStats")
	assert.Equal(t, "Justin Jefferson", got["playerName"])
}

func TestPlayerDeepDiveRequiresName(t *testing.T) {
	s := NewService(&fakeRunner{}, &fakeResolver{}, &fakeLeague{}, 4, nil)
	_, err := s.PlayerDeepDive(context.Background(), "", 5)
	assert.Error(t, err)
}

func TestPlayerDeepDiveClampsWeeks(t *testing.T) {
	s := NewService(&fakeRunner{}, &fakeResolver{}, &fakeLeague{}, 4, nil)
	got, err := s.PlayerDeepDive(context.Background(), "Someone", 99)
	require.NoError(t, err)
	assert.Equal(t, 18, got["recentWeeks"])
}

func TestLeagueRosters(t *testing.T) {
	league := &fakeLeague{
		rosters: []sleeper.Roster{
			{RosterID: 1, OwnerID: "u1", Players: []string{"4046", "HOU"}, Starters: []string{"4046"}},
			{RosterID: 2, OwnerID: "u2", Players: []string{"6794"}},
		},
		users: []sleeper.LeagueUser{
			leagueUser("u1", "alice", "Gridiron Goats"),
			leagueUser("u2", "bob", ""),
		},
	}
	resolver := &fakeResolver{}
	s := NewService(&fakeRunner{}, resolver, league, 4, nil)

	got, err := s.LeagueRosters(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Gridiron Goats", got[0].OwnerName)
	assert.Equal(t, "bob", got[1].OwnerName, "team name falls back to display name")
	assert.Len(t, got[0].Players, 2)
	assert.Len(t, got[0].Starters, 1)
	assert.Empty(t, got[1].Starters)
}

func TestLeagueRostersPropagatesUpstreamError(t *testing.T) {
	s := NewService(&fakeRunner{}, &fakeResolver{}, &fakeLeague{err: errors.New("sleeper down")}, 4, nil)
	_, err := s.LeagueRosters(context.Background(), "l1")
	assert.Error(t, err)
}

func TestLeagueMatchups(t *testing.T) {
	league := &fakeLeague{
		rosters: []sleeper.Roster{
			{RosterID: 1, OwnerID: "u1"},
			{RosterID: 2, OwnerID: "u2"},
		},
		users: []sleeper.LeagueUser{
			leagueUser("u1", "alice", ""),
			leagueUser("u2", "bob", ""),
		},
		matchups: []sleeper.Matchup{
			{RosterID: 1, MatchupID: 7, Points: 101.5, Starters: []string{"4046"}},
			{RosterID: 2, MatchupID: 7, Points: 98.2, Starters: []string{"6794"}},
		},
	}
	s := NewService(&fakeRunner{}, &fakeResolver{}, league, 4, nil)

	got, err := s.LeagueMatchups(context.Background(), "l1", 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].OwnerName)
	assert.Equal(t, 101.5, got[0].Points)
	require.Len(t, got[0].Starters, 1)
	assert.Equal(t, "Player 4046", got[0].Starters[0].Name)
}
