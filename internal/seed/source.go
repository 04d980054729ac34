package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/league"
)

// Default locations searched when no explicit directory is configured.
var (
	GeneratedDir = filepath.Join("data", "generated")
	SampleDir    = filepath.Join("data", "sample")
)

// DefaultRNGSeed seeds simulated seasons when the caller does not pick one.
const DefaultRNGSeed = 42

// Options selects where a dataset comes from.
type Options struct {
	// DataDir is tried first when set.
	DataDir string
	// SearchDirs are tried after DataDir; nil means GeneratedDir, SampleDir.
	SearchDirs []string
	// Simulate, when non-zero, generates that season if no CSV dir has data.
	Simulate int
	RNGSeed  uint64
}

// Load resolves a dataset through the fallback chain: the explicit
// directory, the search directories, a simulated season and finally an empty
// dataset. Only I/O failures on a directory that does hold data are errors.
func Load(opts Options, logger *slog.Logger) (league.Dataset, SeedResult, error) {
	dirs := opts.SearchDirs
	if dirs == nil {
		dirs = []string{GeneratedDir, SampleDir}
	}
	if opts.DataDir != "" {
		dirs = append([]string{opts.DataDir}, dirs...)
	}

	for _, dir := range dirs {
		ds, res, err := LoadCSV(dir)
		if errors.Is(err, ErrNoData) {
			logger.Debug("No seed data", "dir", dir)
			continue
		}
		if err != nil {
			return league.Dataset{}, res, fmt.Errorf("load %s: %w", dir, err)
		}
		logger.Info("Loaded CSV dataset", "dir", dir, "summary", res.Summary())
		return ds, res, nil
	}

	if opts.Simulate != 0 {
		rngSeed := opts.RNGSeed
		if rngSeed == 0 {
			rngSeed = DefaultRNGSeed
		}
		ds := Generate(opts.Simulate, rngSeed)
		res := SeedResult{
			Source:            fmt.Sprintf("simulated:%d", opts.Simulate),
			TeamsLoaded:       len(ds.Teams),
			FixturesLoaded:    len(ds.Fixtures),
			PlayerStatsLoaded: len(ds.PlayerStats),
			EventsLoaded:      len(ds.Events),
		}
		logger.Info("Generated simulated season", "season", opts.Simulate, "summary", res.Summary())
		return ds, res, nil
	}

	logger.Warn("No seed source found, using an empty dataset")
	return league.Dataset{}, SeedResult{Source: "empty"}, nil
}

// Apply replaces the store's dataset with ds.
func Apply(ctx context.Context, w league.Writer, ds league.Dataset, res SeedResult, logger *slog.Logger) (SeedResult, error) {
	if err := w.ReplaceDataset(ctx, ds); err != nil {
		return res, fmt.Errorf("replace dataset: %w", err)
	}
	logger.Info("Dataset replaced", "summary", res.Summary())
	return res, nil
}

// Reseed loads a dataset through the fallback chain and writes it.
func Reseed(ctx context.Context, w league.Writer, opts Options, logger *slog.Logger) (SeedResult, error) {
	ds, res, err := Load(opts, logger)
	if err != nil {
		return res, err
	}
	return Apply(ctx, w, ds, res, logger)
}

// ConfigOptions derives seed options from the process configuration.
func ConfigOptions(cfg *config.Config) Options {
	opts := Options{DataDir: cfg.SeedDataDir, RNGSeed: DefaultRNGSeed}
	if cfg.SeedSimulate {
		opts.Simulate = cfg.DefaultSeason
	}
	return opts
}
