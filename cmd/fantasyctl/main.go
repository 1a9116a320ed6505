// Command fantasyctl is the Fantasy Data command line client.
//
// Usage:
//
//	fantasyctl datasets
//	fantasyctl dictionary --terms yards,touchdown
//	fantasyctl query receiving --names "Justin Jefferson" --seasons 2024
//	fantasyctl resolve 4046 6794 HOU
//	fantasyctl deepdive "Justin Jefferson" --weeks 5
//	fantasyctl league rosters 123456789
//	fantasyctl league matchups 123456789 --week 5
//	fantasyctl trending --kind add --limit 10
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/gridironlab/fantasy-data/internal/bundle"
	"github.com/gridironlab/fantasy-data/internal/catalog"
	"github.com/gridironlab/fantasy-data/internal/config"
	"github.com/gridironlab/fantasy-data/internal/db"
	"github.com/gridironlab/fantasy-data/internal/query"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/retry"
	"github.com/gridironlab/fantasy-data/internal/sleeper"
)

var logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "fantasyctl",
		Short:         "Fantasy Data command line client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(datasetsCmd())
	root.AddCommand(dictionaryCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(resolveCmd())
	root.AddCommand(deepdiveCmd())
	root.AddCommand(leagueCmd())
	root.AddCommand(trendingCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// datasets / dictionary commands (no warehouse connection needed)
// --------------------------------------------------------------------------

func datasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List queryable datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]any{"datasets": catalog.Names()})
		},
	}
}

func dictionaryCmd() *cobra.Command {
	var terms []string
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Search the metric dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]any{"fields": catalog.Dictionary(terms)})
		},
	}
	cmd.Flags().StringSliceVar(&terms, "terms", nil, "Search terms")
	return cmd
}

// --------------------------------------------------------------------------
// query command
// --------------------------------------------------------------------------

func queryCmd() *cobra.Command {
	var (
		names     []string
		seasons   []int
		weeks     []int
		positions []string
		metrics   []string
		orderBy   string
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "query <dataset>",
		Short: "Query a warehouse dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown dataset %q; run fantasyctl datasets", args[0])
			}

			f := query.Filters{
				Names:   names,
				Seasons: seasons,
				Weeks:   weeks,
				Metrics: metrics,
				OrderBy: orderBy,
			}
			if cmd.Flags().Changed("positions") {
				f.Positions = &positions
			}
			f.Limit = spec.DefaultLimit
			if cmd.Flags().Changed("limit") {
				f.Limit = limit
			}

			return runApp(func(ctx context.Context, deps *appDeps) error {
				result, err := query.Run(ctx, deps.pool, spec, f)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
	cmd.Flags().StringSliceVar(&names, "names", nil, "Player names (partial match)")
	cmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Seasons")
	cmd.Flags().IntSliceVar(&weeks, "weeks", nil, "Weeks (weekly datasets only)")
	cmd.Flags().StringSliceVar(&positions, "positions", nil, "Positions; pass empty to disable the filter")
	cmd.Flags().StringSliceVar(&metrics, "metrics", nil, "Extra columns to project")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Metric to sort descending by")
	cmd.Flags().IntVar(&limit, "limit", 0, "Row limit; 0 disables")
	return cmd
}

// --------------------------------------------------------------------------
// resolve command
// --------------------------------------------------------------------------

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id> [id...]",
		Short: "Resolve Sleeper player ids to names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, deps *appDeps) error {
				players, err := deps.resolver.Resolve(ctx, args)
				if err != nil {
					return err
				}
				return printJSON(map[string]any{"players": players})
			})
		},
	}
}

// --------------------------------------------------------------------------
// deepdive command
// --------------------------------------------------------------------------

func deepdiveCmd() *cobra.Command {
	var weeks int
	cmd := &cobra.Command{
		Use:   "deepdive <player name>",
		Short: "Assemble the full analytics bundle for one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, deps *appDeps) error {
				dive, err := deps.bundles.PlayerDeepDive(ctx, args[0], weeks)
				if err != nil {
					return err
				}
				return printJSON(dive)
			})
		},
	}
	cmd.Flags().IntVar(&weeks, "weeks", 5, "Recent weeks for the game log (1-18)")
	return cmd
}

// --------------------------------------------------------------------------
// league command
// --------------------------------------------------------------------------

func leagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "Sleeper league data",
	}
	cmd.AddCommand(leagueRostersCmd())
	cmd.AddCommand(leagueMatchupsCmd())
	cmd.AddCommand(leagueListCmd())
	return cmd
}

func leagueRostersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters <league-id>",
		Short: "List rosters with resolved players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, deps *appDeps) error {
				rosters, err := deps.bundles.LeagueRosters(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(map[string]any{"league_id": args[0], "rosters": rosters})
			})
		},
	}
}

func leagueMatchupsCmd() *cobra.Command {
	var week int
	cmd := &cobra.Command{
		Use:   "matchups <league-id>",
		Short: "Show one week's matchups with resolved starters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if week < 1 || week > 18 {
				return fmt.Errorf("--week must be between 1 and 18")
			}
			return runApp(func(ctx context.Context, deps *appDeps) error {
				matchups, err := deps.bundles.LeagueMatchups(ctx, args[0], week)
				if err != nil {
					return err
				}
				return printJSON(map[string]any{"league_id": args[0], "week": week, "matchups": matchups})
			})
		},
	}
	cmd.Flags().IntVar(&week, "week", 1, "Week number")
	return cmd
}

func leagueListCmd() *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List a user's leagues for a season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, deps *appDeps) error {
				user, err := deps.sleeper.GetUser(ctx, args[0])
				if err != nil {
					return err
				}
				leagues, err := deps.sleeper.GetLeaguesForUser(ctx, user.UserID, "nfl", season)
				if err != nil {
					return err
				}
				return printJSON(map[string]any{"user": user, "season": season, "leagues": leagues})
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.CurrentSeason, "Season year")
	return cmd
}

// --------------------------------------------------------------------------
// trending command
// --------------------------------------------------------------------------

func trendingCmd() *cobra.Command {
	var (
		kind     string
		lookback int
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending adds or drops with resolved names",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "add" && kind != "drop" {
				return fmt.Errorf("--kind must be add or drop")
			}
			return runApp(func(ctx context.Context, deps *appDeps) error {
				trending, err := deps.sleeper.GetTrendingPlayers(ctx, kind, lookback, limit)
				if err != nil {
					return err
				}
				ids := make([]string, 0, len(trending))
				for _, t := range trending {
					ids = append(ids, t.PlayerID)
				}
				players, err := deps.resolver.Resolve(ctx, ids)
				if err != nil {
					return err
				}
				out := make([]map[string]any, len(trending))
				for i, t := range trending {
					out[i] = map[string]any{"player": players[i], "count": t.Count}
				}
				return printJSON(map[string]any{"kind": kind, "players": out})
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "add", "add or drop")
	cmd.Flags().IntVar(&lookback, "lookback-hours", 24, "Lookback window in hours")
	cmd.Flags().IntVar(&limit, "limit", 25, "Maximum players")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

type appDeps struct {
	pool     *db.Pool
	resolver *resolve.Resolver
	sleeper  *sleeper.Client
	bundles  *bundle.Service
}

// runApp handles config loading, DB connection, and context cancellation.
func runApp(fn func(ctx context.Context, deps *appDeps) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cache := resolve.NewCache(cfg.PlayerCacheTTL)
	resolver := resolve.NewResolver(resolve.NewPgStore(pool.Pool), cache, cfg.PlayerLookupBatchSize, logger)

	policy := retry.Policy{
		MaxAttempts:  cfg.RetryMaxAttempts,
		InitialDelay: cfg.RetryInitialDelay,
		MaxDelay:     cfg.RetryMaxDelay,
		Multiplier:   cfg.RetryMultiplier,
		IsRetryable:  retry.Retryable,
		Logger:       logger,
	}
	sl := sleeper.NewClient(cfg.SleeperBaseURL, cfg.SleeperRequestsPerMinute, policy, logger)

	deps := &appDeps{
		pool:     pool,
		resolver: resolver,
		sleeper:  sl,
		bundles:  bundle.NewService(pool, resolver, sl, cfg.DeepDiveWorkers, logger),
	}
	return fn(ctx, deps)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
