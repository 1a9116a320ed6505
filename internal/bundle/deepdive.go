package bundle

import (
	"context"
	"fmt"

	"github.com/gridironlab/fantasy-data/internal/catalog"
	"github.com/gridironlab/fantasy-data/internal/query"
)

// Position-appropriate metric sets for the deep-dive sections.
var (
	receivingMetrics = []string{
		"targets", "receptions", "receiving_yards", "receiving_tds",
		"fantasy_points", "fantasy_points_ppr", "target_share",
		"catch_percentage", "avg_yac", "receiving_air_yards",
		"receiving_first_downs", "receiving_yards_after_catch",
	}
	receivingPctileMetrics = []string{
		"targets_pctile", "target_share_pctile", "receiving_yards_pctile",
		"fantasy_points_ppr_pctile", "catch_percentage_pctile", "avg_yac_pctile",
	}
	passingMetrics = []string{
		"passing_yards", "passing_tds", "passer_rating",
		"completion_percentage", "epa_total", "fantasy_points",
		"fantasy_points_ppr", "aggressiveness", "avg_time_to_throw",
	}
	rushingMetrics = []string{
		"carries", "rushing_yards", "rushing_tds", "efficiency",
		"fantasy_points", "fantasy_points_ppr", "rush_yards_over_expected",
	}
	usageTrendMetrics = []string{"target_share", "avg_separation", "avg_cushion"}
	gameLogMetrics    = []string{"fantasy_points", "fantasy_points_ppr"}
)

// PlayerDeepDive assembles a single-player data bundle: bio, recent
// seasonal stats per category, percentile ranks, consistency, weekly game
// log, and usage trends, fetched concurrently. Sections that fail are
// omitted; the bundle itself only errors on invalid input.
func (s *Service) PlayerDeepDive(ctx context.Context, playerName string, recentWeeks int) (map[string]any, error) {
	if playerName == "" {
		return nil, fmt.Errorf("player name is required")
	}
	if recentWeeks < 1 {
		recentWeeks = 5
	}
	if recentWeeks > 18 {
		recentWeeks = 18
	}

	section := func(dataset, key string, f query.Filters) task {
		return task{key: key, fetch: func(ctx context.Context) (any, error) {
			spec, ok := catalog.Lookup(dataset)
			if !ok {
				return nil, fmt.Errorf("unknown dataset %s", dataset)
			}
			got, err := query.Run(ctx, s.runner, spec, f)
			if err != nil {
				return nil, err
			}
			return got[spec.BundleKey], nil
		}}
	}
	names := []string{playerName}

	tasks := []task{
		{key: "playerInfo", fetch: func(ctx context.Context) (any, error) {
			return s.playerInfo(ctx, playerName)
		}},
		section(catalog.Receiving, "advReceivingStats", query.Filters{Names: names, Metrics: receivingMetrics, Limit: 3}),
		section(catalog.ReceivingPctile, "recvPctile", query.Filters{Names: names, Metrics: receivingPctileMetrics, Limit: 3}),
		section(catalog.Passing, "advPassingStats", query.Filters{Names: names, Metrics: passingMetrics, Limit: 3}),
		section(catalog.Rushing, "advRushingStats", query.Filters{Names: names, Metrics: rushingMetrics, Limit: 3}),
		section(catalog.Consistency, "consistency", query.Filters{Names: names, Limit: 1}),
		section(catalog.OffensiveGameLogs, "gameLog", query.Filters{Names: names, Metrics: gameLogMetrics, Limit: recentWeeks}),
		section(catalog.ReceivingWeekly, "usageTrends", query.Filters{Names: names, Metrics: usageTrendMetrics, Limit: recentWeeks}),
	}

	out := s.runAll(ctx, tasks)
	out["playerName"] = playerName
	out["recentWeeks"] = recentWeeks
	return out, nil
}

// playerInfo fetches bio rows from the id-lookup view. The view has no
// season column, so it bypasses the spec-driven builder.
func (s *Service) playerInfo(ctx context.Context, playerName string) (any, error) {
	term := "%" + query.SanitizeName(playerName) + "%"
	stmt := `SELECT "display_name", "latest_team", "position", "height", "weight", "age", ` +
		`"sleeper_id", "gsis_id", "years_of_experience" FROM "` + catalog.LookupView + `" ` +
		`WHERE "merge_name" ILIKE $1 OR "display_name" ILIKE $2 LIMIT 35`
	rows, err := s.runner.Select(ctx, stmt, []any{term, term})
	if err != nil {
		return nil, fmt.Errorf("player info: %w", err)
	}
	return rows, nil
}
