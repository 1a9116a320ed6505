// Package catalog declares the queryable datasets of the stats warehouse
// and the metric field dictionary. Everything here is immutable and built
// at process start; nothing is loaded dynamically.
package catalog

import (
	"sort"

	"github.com/gridironlab/fantasy-data/internal/query"
)

// Dataset names accepted by the stats API and CLI.
const (
	Receiving          = "receiving"
	Passing            = "passing"
	Rushing            = "rushing"
	Defense            = "defense"
	ReceivingWeekly    = "receiving_weekly"
	PassingWeekly      = "passing_weekly"
	RushingWeekly      = "rushing_weekly"
	DefenseWeekly      = "defense_weekly"
	OffensiveGameLogs  = "off_game_logs"
	DefensiveGameLogs  = "def_game_logs"
	Consistency        = "consistency"
	ReceivingPctile    = "receiving_percentiles"
)

// Warehouse views and tables.
const (
	PlayersView = "vw_nfl_players_with_dynasty_ids"
	LookupView  = "mv_player_id_lookup"
)

var (
	seasonalBase = []string{"season", "player_name", "ff_team", "ff_position"}
	weeklyBase   = []string{"season", "week", "player_name", "team", "position"}
	gameLogBase  = []string{"season", "week", "player_display_name", "recent_team", "position"}

	skillPositions   = []string{"WR", "TE", "RB"}
	defensePositions = []string{"CB", "DB", "DE", "DL", "LB", "S"}
	allOffense       = []string{"QB", "RB", "WR", "TE"}
)

var specs = map[string]query.Spec{
	Receiving: {
		Table:            "vw_advanced_receiving_analytics",
		BaseColumns:      seasonalBase,
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: skillPositions,
		BundleKey:        "advReceivingStats",
		DefaultLimit:     25,
	},
	Passing: {
		Table:            "vw_advanced_passing_analytics",
		BaseColumns:      seasonalBase,
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: []string{"QB"},
		BundleKey:        "advPassingStats",
		DefaultLimit:     25,
	},
	Rushing: {
		Table:            "vw_advanced_rushing_analytics",
		BaseColumns:      seasonalBase,
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: []string{"RB", "QB"},
		BundleKey:        "advRushingStats",
		DefaultLimit:     25,
	},
	Defense: {
		Table:            "vw_advanced_def_analytics",
		BaseColumns:      []string{"season", "player_name", "team", "position"},
		NameColumn:       "merge_name",
		PositionColumn:   "position",
		DefaultPositions: defensePositions,
		BundleKey:        "advDefenseStats",
		DefaultLimit:     25,
	},
	ReceivingWeekly: {
		Table:            "vw_advanced_receiving_analytics_weekly",
		BaseColumns:      []string{"season", "week", "player_name", "ff_team", "ff_position"},
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: skillPositions,
		BundleKey:        "advReceivingStats",
		Weekly:           true,
		DefaultLimit:     25,
	},
	PassingWeekly: {
		Table:            "vw_advanced_passing_analytics_weekly",
		BaseColumns:      weeklyBase,
		NameColumn:       "merge_name",
		PositionColumn:   "position",
		DefaultPositions: []string{"QB"},
		BundleKey:        "advPassingStats",
		Weekly:           true,
		DefaultLimit:     25,
	},
	RushingWeekly: {
		Table:            "vw_advanced_rushing_analytics_weekly",
		BaseColumns:      weeklyBase,
		NameColumn:       "merge_name",
		PositionColumn:   "position",
		DefaultPositions: []string{"RB", "QB"},
		BundleKey:        "advRushingStats",
		Weekly:           true,
		DefaultLimit:     25,
	},
	DefenseWeekly: {
		Table:            "vw_advanced_def_analytics_weekly",
		BaseColumns:      weeklyBase,
		NameColumn:       "merge_name",
		PositionColumn:   "position",
		DefaultPositions: defensePositions,
		BundleKey:        "advDefenseStats",
		Weekly:           true,
		DefaultLimit:     25,
	},
	OffensiveGameLogs: {
		Table:            "nflreadr_nfl_player_stats",
		BaseColumns:      gameLogBase,
		NameColumn:       "player_display_name",
		PositionColumn:   "position",
		DefaultPositions: allOffense,
		BundleKey:        "offGameStats",
		Weekly:           true,
		DefaultLimit:     25,
		SortColumn:       "player_display_name",
	},
	DefensiveGameLogs: {
		Table:            "nflreadr_nfl_player_stats_defense",
		BaseColumns:      []string{"season", "week", "player_display_name", "team", "position"},
		NameColumn:       "player_display_name",
		PositionColumn:   "position",
		DefaultPositions: defensePositions,
		BundleKey:        "defGameStats",
		Weekly:           true,
		DefaultLimit:     25,
		SortColumn:       "player_display_name",
	},
	Consistency: {
		Table: "mv_player_consistency",
		BaseColumns: []string{
			"player_name", "merge_name", "season", "ff_position",
			"games_played", "avg_fp_ppr", "fp_stddev_ppr",
			"fp_floor_p10", "fp_ceiling_p90", "fp_median_ppr",
			"boom_games_20plus", "bust_games_under_5",
			"consistency_coefficient",
		},
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: allOffense,
		BundleKey:        "consistency",
		DefaultLimit:     25,
	},
	ReceivingPctile: {
		Table:            "mv_receiving_percentile_ranks",
		BaseColumns:      []string{"merge_name", "ff_position", "season"},
		NameColumn:       "merge_name",
		PositionColumn:   "ff_position",
		DefaultPositions: skillPositions,
		BundleKey:        "recvPctile",
		DefaultLimit:     25,
		SortColumn:       "merge_name",
	},
}

// Lookup returns the spec for a dataset name.
func Lookup(name string) (query.Spec, bool) {
	s, ok := specs[name]
	return s, ok
}

// Names returns all dataset names, sorted.
func Names() []string {
	out := make([]string, 0, len(specs))
	for name := range specs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
