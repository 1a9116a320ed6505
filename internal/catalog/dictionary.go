package catalog

import "strings"

// Field describes one metric column available in the warehouse.
type Field struct {
	Name        string `json:"field"`
	Description string `json:"description"`
	SourceTable string `json:"source_table"`
}

// The field dictionary used to be a warehouse view consulted at runtime;
// it changes only with warehouse migrations, so it is embedded here instead.
var dictionary = []Field{
	// Receiving
	{"targets", "Number of times the player was targeted by a pass", "vw_advanced_receiving_analytics"},
	{"receptions", "Number of completed catches", "vw_advanced_receiving_analytics"},
	{"receiving_yards", "Total receiving yards gained", "vw_advanced_receiving_analytics"},
	{"receiving_tds", "Receiving touchdowns scored", "vw_advanced_receiving_analytics"},
	{"target_share", "Share of the team's targets directed at the player", "vw_advanced_receiving_analytics"},
	{"catch_percentage", "Receptions divided by targets", "vw_advanced_receiving_analytics"},
	{"avg_yac", "Average yards after catch per reception", "vw_advanced_receiving_analytics"},
	{"avg_separation", "Average separation from the nearest defender at catch, in yards", "vw_advanced_receiving_analytics"},
	{"avg_cushion", "Average distance from the defender at the line of scrimmage, in yards", "vw_advanced_receiving_analytics"},
	{"receiving_air_yards", "Total air yards on targets to the player", "vw_advanced_receiving_analytics"},
	{"receiving_first_downs", "First downs gained on receptions", "vw_advanced_receiving_analytics"},
	{"receiving_yards_after_catch", "Total yards gained after the catch", "vw_advanced_receiving_analytics"},

	// Passing
	{"passing_yards", "Total passing yards", "vw_advanced_passing_analytics"},
	{"passing_tds", "Passing touchdowns thrown", "vw_advanced_passing_analytics"},
	{"passer_rating", "NFL passer rating", "vw_advanced_passing_analytics"},
	{"completion_percentage", "Completions divided by attempts", "vw_advanced_passing_analytics"},
	{"epa_total", "Total expected points added on pass plays", "vw_advanced_passing_analytics"},
	{"aggressiveness", "Share of throws into tight coverage", "vw_advanced_passing_analytics"},
	{"avg_time_to_throw", "Average seconds from snap to throw", "vw_advanced_passing_analytics"},
	{"interceptions", "Interceptions thrown", "vw_advanced_passing_analytics"},

	// Rushing
	{"carries", "Number of rushing attempts", "vw_advanced_rushing_analytics"},
	{"rushing_yards", "Total rushing yards gained", "vw_advanced_rushing_analytics"},
	{"rushing_tds", "Rushing touchdowns scored", "vw_advanced_rushing_analytics"},
	{"efficiency", "Yards gained per yard of distance traveled", "vw_advanced_rushing_analytics"},
	{"avg_time_to_los", "Average seconds to cross the line of scrimmage", "vw_advanced_rushing_analytics"},
	{"rush_yards_over_expected", "Rushing yards gained over the expected amount", "vw_advanced_rushing_analytics"},
	{"percent_attempts_gte_eight_defenders", "Share of carries against eight or more defenders in the box", "vw_advanced_rushing_analytics"},

	// Defense
	{"tackles", "Total tackles", "vw_advanced_def_analytics"},
	{"sacks", "Quarterback sacks", "vw_advanced_def_analytics"},
	{"def_interceptions", "Passes intercepted on defense", "vw_advanced_def_analytics"},
	{"passes_defended", "Passes broken up or deflected", "vw_advanced_def_analytics"},
	{"forced_fumbles", "Fumbles forced", "vw_advanced_def_analytics"},

	// Fantasy scoring
	{"fantasy_points", "Standard fantasy points scored", "nflreadr_nfl_player_stats"},
	{"fantasy_points_ppr", "Fantasy points scored in point-per-reception scoring", "nflreadr_nfl_player_stats"},

	// Consistency
	{"avg_fp_ppr", "Average PPR fantasy points per game", "mv_player_consistency"},
	{"fp_stddev_ppr", "Standard deviation of weekly PPR fantasy points", "mv_player_consistency"},
	{"fp_floor_p10", "10th percentile weekly PPR score", "mv_player_consistency"},
	{"fp_ceiling_p90", "90th percentile weekly PPR score", "mv_player_consistency"},
	{"boom_games_20plus", "Games with 20 or more PPR points", "mv_player_consistency"},
	{"bust_games_under_5", "Games with fewer than 5 PPR points", "mv_player_consistency"},
	{"consistency_coefficient", "Coefficient of variation of weekly scores, lower is steadier", "mv_player_consistency"},
}

// Dictionary returns field definitions whose description matches any of the
// given terms, case-insensitively. No terms returns the whole dictionary.
func Dictionary(terms []string) []Field {
	if len(terms) == 0 {
		out := make([]Field, len(dictionary))
		copy(out, dictionary)
		return out
	}

	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			lowered = append(lowered, t)
		}
	}

	out := []Field{}
	for _, f := range dictionary {
		desc := strings.ToLower(f.Description)
		for _, t := range lowered {
			if strings.Contains(desc, t) || strings.Contains(f.Name, t) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
