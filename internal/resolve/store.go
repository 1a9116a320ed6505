package resolve

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore looks up players in the warehouse id-mapping view.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a warehouse-backed PlayerStore.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// PlayersByIDs returns one row per id found in the mapping view. Ids absent
// from the view are simply not returned.
func (s *PgStore) PlayersByIDs(ctx context.Context, ids []int64) ([]PlayerRow, error) {
	rows, err := s.pool.Query(ctx, "players_by_sleeper_ids", ids)
	if err != nil {
		return nil, fmt.Errorf("players by sleeper ids: %w", err)
	}
	defer rows.Close()

	var players []PlayerRow
	for rows.Next() {
		var p PlayerRow
		if err := rows.Scan(&p.SleeperID, &p.Name, &p.Team, &p.Position); err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
