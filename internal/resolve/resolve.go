// Package resolve maps opaque platform player ids to enriched player
// records via batched warehouse lookups behind a shared TTL cache.
//
// Every input id yields exactly one output record: numeric ids resolve
// through the warehouse, non-numeric ids (team defenses like "HOU") map to a
// fixed DEF placeholder, and unknown numeric ids degrade to an empty record
// rather than an error.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gridironlab/fantasy-data/internal/metrics"
)

// Player is the compact record returned for every resolved id.
type Player struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

// PlayerRow is one row from the warehouse bulk lookup.
type PlayerRow struct {
	SleeperID int64
	Name      string
	Team      string
	Position  string
}

// PlayerStore performs the bulk id lookup. *PgStore implements it.
type PlayerStore interface {
	PlayersByIDs(ctx context.Context, ids []int64) ([]PlayerRow, error)
}

// Team defenses ride along in player id lists as team abbreviations.
const defensePosition = "DEF"

const defaultBatchSize = 100

// Resolver resolves platform player ids through a PlayerStore, caching
// results in a shared TTL cache and chunking lookups to bound request size.
type Resolver struct {
	store     PlayerStore
	cache     *Cache
	batchSize int
	logger    *slog.Logger
}

// NewResolver creates a resolver. batchSize <= 0 falls back to 100.
func NewResolver(store PlayerStore, cache *Cache, batchSize int, logger *slog.Logger) *Resolver {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, cache: cache, batchSize: batchSize, logger: logger}
}

// Resolve maps ids to players. The output has exactly one entry per input
// id, in input order; duplicates repeat the same value. A warehouse lookup
// failure is returned as an error rather than degraded to "not found".
func (r *Resolver) Resolve(ctx context.Context, ids []string) ([]Player, error) {
	if len(ids) == 0 {
		return []Player{}, nil
	}

	// Distinct numeric ids, keyed by their canonical decimal form.
	now := time.Now()
	found := make(map[string]Player)
	var missing []int64
	seen := make(map[string]bool)
	for _, id := range ids {
		n, ok := parseNumeric(id)
		if !ok {
			continue
		}
		key := strconv.FormatInt(n, 10)
		if seen[key] {
			continue
		}
		seen[key] = true
		if p, hit := r.cache.get(key, now); hit {
			metrics.ResolveCacheHits.Inc()
			found[key] = p
		} else {
			metrics.ResolveCacheMisses.Inc()
			missing = append(missing, n)
		}
	}

	for start := 0; start < len(missing); start += r.batchSize {
		end := min(start+r.batchSize, len(missing))
		batch := missing[start:end]

		rows, err := r.store.PlayersByIDs(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("player lookup batch of %d: %w", len(batch), err)
		}
		metrics.ResolveBatches.Inc()
		r.logger.Debug("resolved player batch", "requested", len(batch), "returned", len(rows))

		for _, row := range rows {
			key := strconv.FormatInt(row.SleeperID, 10)
			p := Player{Name: row.Name, Position: row.Position, Team: row.Team}
			found[key] = p
			r.cache.put(key, p, time.Now())
		}
	}

	out := make([]Player, 0, len(ids))
	for _, id := range ids {
		n, ok := parseNumeric(id)
		if !ok {
			out = append(out, Player{Name: id, Position: defensePosition, Team: id})
			continue
		}
		if p, ok := found[strconv.FormatInt(n, 10)]; ok {
			out = append(out, p)
		} else {
			out = append(out, Player{Name: id})
		}
	}
	return out, nil
}

// parseNumeric accepts strings of ASCII digits only, mirroring how the
// platform distinguishes player ids from team-defense codes.
func parseNumeric(id string) (int64, bool) {
	if id == "" {
		return 0, false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
