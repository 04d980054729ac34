// Command ingest is the AUF Analytics data CLI: it seeds the store and runs
// the analytics from the terminal.
//
// Usage:
//
//	auf-ingest seed auto
//	auf-ingest seed generate --season 2024 --rng-seed 7
//	auf-ingest seed generate --season 2024 --out data/generated
//	auf-ingest seed csv --dir data/sample
//	auf-ingest standings --season 2024 --stage anual
//	auf-ingest scorers --top 10
//	auf-ingest ask "¿Quién es el goleador del Apertura?"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/auf-analytics/internal/analytics"
	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
	"github.com/albapepper/auf-analytics/internal/query"
	"github.com/albapepper/auf-analytics/internal/seed"
	"github.com/albapepper/auf-analytics/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "auf-ingest",
		Short:        "AUF Analytics data CLI",
		SilenceUsage: true,
	}

	root.AddCommand(seedCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(scorersCmd())
	root.AddCommand(askCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a dataset into the store",
	}
	cmd.AddCommand(seedAutoCmd())
	cmd.AddCommand(seedGenerateCmd())
	cmd.AddCommand(seedCSVCmd())
	return cmd
}

func seedAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Seed through the fallback chain (SEED_DATA_DIR, data/generated, data/sample, simulated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				start := time.Now()
				result, err := seed.Reseed(ctx, st, seed.ConfigOptions(cfg), logger)
				if err != nil {
					return err
				}
				logSeed("Seed finished", start, result)
				return nil
			})
		},
	}
}

func seedGenerateCmd() *cobra.Command {
	var season int
	var rngSeed uint64
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Simulate a full season and store it (or export it as CSV with --out)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season <= 0 {
				return fmt.Errorf("--season must be a positive year")
			}
			ds := seed.Generate(season, rngSeed)
			result := seed.SeedResult{
				Source:            fmt.Sprintf("simulated:%d", season),
				TeamsLoaded:       len(ds.Teams),
				FixturesLoaded:    len(ds.Fixtures),
				PlayerStatsLoaded: len(ds.PlayerStats),
				EventsLoaded:      len(ds.Events),
			}

			if out != "" {
				if err := seed.WriteCSV(out, ds); err != nil {
					return err
				}
				logger.Info("Wrote CSV dataset", "dir", out, "summary", result.Summary())
				return nil
			}

			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				start := time.Now()
				applied, err := seed.Apply(ctx, st, ds, result, logger)
				if err != nil {
					return err
				}
				logSeed("Generate finished", start, applied)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", time.Now().Year(), "Season year")
	cmd.Flags().Uint64Var(&rngSeed, "rng-seed", seed.DefaultRNGSeed, "Random seed; the same seed yields the same season")
	cmd.Flags().StringVar(&out, "out", "", "Write teams.csv, fixtures.csv and player_stats.csv to this directory instead of the store")
	return cmd
}

func seedCSVCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Load teams.csv, fixtures.csv and player_stats.csv from a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				if dir == "" {
					dir = cfg.SeedDataDir
				}
				if dir == "" {
					return fmt.Errorf("--dir or SEED_DATA_DIR is required")
				}
				ds, result, err := seed.LoadCSV(dir)
				if err != nil {
					return err
				}
				start := time.Now()
				result, err = seed.Apply(ctx, st, ds, result, logger)
				if err != nil {
					return err
				}
				logSeed("CSV seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding the CSV files (defaults to SEED_DATA_DIR)")
	return cmd
}

func logSeed(msg string, start time.Time, result seed.SeedResult) {
	logger.Info(msg, "duration", time.Since(start).Round(time.Millisecond), "summary", result.Summary())
	for _, e := range result.Errors {
		logger.Warn("seed error", "error", e)
	}
}

// --------------------------------------------------------------------------
// analytics commands
// --------------------------------------------------------------------------

type periodFlags struct {
	season int
	stage  string
	json   bool
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.season, "season", 0, "Season year (defaults to DEFAULT_SEASON)")
	cmd.Flags().StringVar(&p.stage, "stage", "", "apertura, intermedio, clausura or anual (defaults to DEFAULT_STAGE)")
	cmd.Flags().BoolVar(&p.json, "json", false, "Print JSON instead of a table")
}

func (p *periodFlags) resolve(cfg *config.Config) (int, string, error) {
	season, stage := p.season, strings.ToLower(p.stage)
	if season == 0 {
		season = cfg.DefaultSeason
	}
	if stage == "" {
		stage = cfg.DefaultStage
	}
	if !league.IsKnownStage(stage) {
		return 0, "", fmt.Errorf("unknown stage %q", stage)
	}
	return season, stage, nil
}

func standingsCmd() *cobra.Command {
	var pf periodFlags
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the standings table of a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				season, stage, err := pf.resolve(cfg)
				if err != nil {
					return err
				}
				rows, err := analytics.NewService(st).Standings(ctx, season, stage)
				if err != nil {
					return err
				}
				if pf.json {
					return printJSON(cmd.OutOrStdout(), rows)
				}
				return printStandings(cmd.OutOrStdout(), rows)
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func scorersCmd() *cobra.Command {
	var pf periodFlags
	var top int
	cmd := &cobra.Command{
		Use:   "scorers",
		Short: "Print the top scorers of a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				season, stage, err := pf.resolve(cfg)
				if err != nil {
					return err
				}
				list, err := analytics.NewService(st).Scorers(ctx, season, stage, top)
				if err != nil {
					return err
				}
				if pf.json {
					return printJSON(cmd.OutOrStdout(), list)
				}
				return printScorers(cmd.OutOrStdout(), list)
			})
		},
	}
	pf.register(cmd)
	cmd.Flags().IntVar(&top, "top", analytics.MaxScorers, "Number of scorers (max 20)")
	return cmd
}

func askCmd() *cobra.Command {
	var pf periodFlags
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a free-text question about a period",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error {
				season, stage, err := pf.resolve(cfg)
				if err != nil {
					return err
				}
				rules, err := query.LoadRules(cfg.QueryRulesFile)
				if err != nil {
					return err
				}
				router := query.NewRouter(st, analytics.NewService(st), rules, logger)
				ans, err := router.Answer(ctx, strings.Join(args, " "), season, stage)
				if err != nil {
					return err
				}
				if pf.json {
					return printJSON(cmd.OutOrStdout(), ans)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Text)
				return err
			})
		},
	}
	pf.register(cmd)
	return cmd
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printStandings(w io.Writer, rows []analytics.StandingsRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tTeam\tMP\tW\tD\tL\tGF\tGA\tGD\tPts\tLast 5\t")
	for _, r := range rows {
		form := "-"
		if r.Last5 != nil {
			form = *r.Last5
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t%s\t\n",
			r.Position, r.Team, r.Played, r.Won, r.Drawn, r.Lost,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points, form)
	}
	return tw.Flush()
}

func printScorers(w io.Writer, list []analytics.Scorer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPlayer\tTeam\tGoals")
	for i, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, s.Player, s.Team, s.Goals)
	}
	return tw.Flush()
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func runStore(fn func(ctx context.Context, cfg *config.Config, st league.ReadWriter) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return fn(ctx, cfg, st)
}
