package bundle

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

// RosterSummary is one league roster with player ids resolved to names.
type RosterSummary struct {
	RosterID  int              `json:"roster_id"`
	OwnerName string           `json:"owner_name"`
	Wins      int              `json:"wins"`
	Losses    int              `json:"losses"`
	Players   []resolve.Player `json:"players"`
	Starters  []resolve.Player `json:"starters,omitempty"`
}

// MatchupSummary is one roster's side of a weekly matchup with starters
// resolved to names.
type MatchupSummary struct {
	MatchupID int              `json:"matchup_id"`
	RosterID  int              `json:"roster_id"`
	OwnerName string           `json:"owner_name"`
	Points    float64          `json:"points"`
	Starters  []resolve.Player `json:"starters"`
}

// LeagueRosters fetches a league's rosters and members concurrently and
// resolves every player id to a compact record, preserving roster order.
func (s *Service) LeagueRosters(ctx context.Context, leagueID string) ([]RosterSummary, error) {
	rosters, owners, err := s.rostersAndOwners(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	out := make([]RosterSummary, 0, len(rosters))
	for _, r := range rosters {
		players, err := s.resolver.Resolve(ctx, r.Players)
		if err != nil {
			return nil, fmt.Errorf("resolve roster %d players: %w", r.RosterID, err)
		}
		summary := RosterSummary{
			RosterID:  r.RosterID,
			OwnerName: owners[r.OwnerID],
			Wins:      r.Settings.Wins,
			Losses:    r.Settings.Losses,
			Players:   players,
		}
		if len(r.Starters) > 0 {
			starters, err := s.resolver.Resolve(ctx, r.Starters)
			if err != nil {
				return nil, fmt.Errorf("resolve roster %d starters: %w", r.RosterID, err)
			}
			summary.Starters = starters
		}
		out = append(out, summary)
	}
	return out, nil
}

// LeagueMatchups fetches one week's matchups with starters resolved.
func (s *Service) LeagueMatchups(ctx context.Context, leagueID string, week int) ([]MatchupSummary, error) {
	matchups, err := s.league.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("get matchups: %w", err)
	}

	rosters, owners, err := s.rostersAndOwners(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rosterOwner := make(map[int]string, len(rosters))
	for _, r := range rosters {
		rosterOwner[r.RosterID] = owners[r.OwnerID]
	}

	out := make([]MatchupSummary, 0, len(matchups))
	for _, m := range matchups {
		starters, err := s.resolver.Resolve(ctx, m.Starters)
		if err != nil {
			return nil, fmt.Errorf("resolve matchup %d starters: %w", m.MatchupID, err)
		}
		out = append(out, MatchupSummary{
			MatchupID: m.MatchupID,
			RosterID:  m.RosterID,
			OwnerName: rosterOwner[m.RosterID],
			Points:    m.Points,
			Starters:  starters,
		})
	}
	return out, nil
}

// rostersAndOwners fetches rosters and league members in parallel and maps
// owner ids to team names.
func (s *Service) rostersAndOwners(ctx context.Context, leagueID string) ([]sleeper.Roster, map[string]string, error) {
	var (
		wg         sync.WaitGroup
		rosters    []sleeper.Roster
		users      []sleeper.LeagueUser
		rostersErr error
		usersErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rosters, rostersErr = s.league.GetRosters(ctx, leagueID)
	}()
	go func() {
		defer wg.Done()
		users, usersErr = s.league.GetLeagueUsers(ctx, leagueID)
	}()
	wg.Wait()

	if rostersErr != nil {
		return nil, nil, fmt.Errorf("get rosters: %w", rostersErr)
	}
	if usersErr != nil {
		return nil, nil, fmt.Errorf("get league users: %w", usersErr)
	}

	owners := make(map[string]string, len(users))
	for _, u := range users {
		owners[u.UserID] = u.TeamName()
	}
	return rosters, owners, nil
}
