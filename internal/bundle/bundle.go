// Package bundle composes warehouse queries, player resolution, and the
// Sleeper API into composite responses. It owns no data logic of its own:
// each section is one query or upstream call, fanned out over a bounded
// worker pool and assembled into a single bundle.
package bundle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gridironlab/fantasy-data/internal/query"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

// LeagueAPI is the slice of the Sleeper client the bundle layer needs.
type LeagueAPI interface {
	GetRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]sleeper.LeagueUser, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error)
}

// Resolver maps platform player ids to player records.
type Resolver interface {
	Resolve(ctx context.Context, ids []string) ([]resolve.Player, error)
}

const maxWorkers = 10

// Service assembles composite responses.
type Service struct {
	runner   query.Runner
	resolver Resolver
	league   LeagueAPI
	workers  int
	logger   *slog.Logger
}

// NewService creates a bundle service. workers is clamped to [1, 10].
func NewService(runner query.Runner, resolver Resolver, league LeagueAPI, workers int, logger *slog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{runner: runner, resolver: resolver, league: league, workers: workers, logger: logger}
}

// task is one independently fetchable section of a composite response.
type task struct {
	key   string
	fetch func(context.Context) (any, error)
}

// runAll fans the tasks out over the worker pool and collects results under
// their keys. A failed section is logged and omitted rather than failing
// the whole bundle.
func (s *Service) runAll(ctx context.Context, tasks []task) map[string]any {
	workers := s.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	ch := make(chan task, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)

	out := make(map[string]any, len(tasks))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range ch {
				v, err := t.fetch(ctx)
				if err != nil {
					s.logger.Warn("bundle section failed", "section", t.key, "error", err)
					continue
				}
				mu.Lock()
				out[t.key] = v
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return out
}
