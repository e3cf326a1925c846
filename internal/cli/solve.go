package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rondo/ils"
	"github.com/katalvlaran/rondo/tour"
)

// newSolveCmd creates the solve command. It synthesizes an instance, runs
// the engine (sequentially or as a parallel multi-start), and prints a
// summary panel to stdout.
//
// Configuration precedence: built-in defaults < TOML file (--config) <
// explicitly set flags.
func newSolveCmd() *cobra.Command {
	var (
		cfg        = defaultSolveConfig()
		configPath string
		budget     time.Duration
		limit      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run iterated local search on a synthetic instance",
		Long: `Solve synthesizes a symmetric Euclidean instance (uniform points in
the unit square, or a rippled ring whose optimum is the angular order) and
runs the iterated-local-search engine on it. With --workers > 1 the run
becomes a parallel multi-start and the summary reports per-worker cost
dispersion alongside the best tour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// File first, then explicitly set flags re-applied on top.
			if configPath != "" {
				flagged := snapshotFlags(cmd, cfg, budget, limit)
				if err := loadConfig(configPath, &cfg); err != nil {
					return err
				}
				flagged.apply(&cfg)
			} else {
				cfg.SearchBudget = duration(budget)
				cfg.TimeLimit = duration(limit)
			}

			return runSolve(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "TOML config file (flags win over file values)")
	flags.IntVarP(&cfg.Cities, "cities", "n", cfg.Cities, "number of cities in the synthetic instance")
	flags.StringVar(&cfg.Instance, "instance", cfg.Instance, "instance geometry: uniform or ring")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 selects the engine's fixed default stream)")
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "worker count; 0 or 1 runs sequentially, -1 uses all CPUs but one")
	flags.StringVar(&cfg.Acceptance, "acceptance", cfg.Acceptance, "local-search policy: first-improvement or steepest-ascent")
	flags.StringVar(&cfg.Move, "move", cfg.Move, "neighborhood operator: swap or reverse")
	flags.StringVar(&cfg.Homebase, "homebase", cfg.Homebase, "homebase policy: always-accept, greedy, or epsilon-greedy")
	flags.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "exploration probability of epsilon-greedy")
	flags.IntVar(&cfg.TabuCapacity, "tabu", cfg.TabuCapacity, "tabu history capacity (0 disables the memory)")
	flags.IntVar(&cfg.RetryCap, "retries", cfg.RetryCap, "tabu resampling attempts per perturbation")
	flags.IntVarP(&cfg.MaxIterations, "iterations", "i", cfg.MaxIterations, "outer iteration cap")
	flags.DurationVar(&budget, "search-budget", 0, "wall-clock budget per local search (0 = none)")
	flags.DurationVar(&limit, "time-limit", 0, "wall-clock budget for the whole run (0 = none)")

	return cmd
}

// flagOverrides remembers which flags the user set explicitly, plus their
// values, so they can be re-applied over a TOML file.
type flagOverrides struct {
	cmd    *cobra.Command
	cfg    solveConfig
	budget time.Duration
	limit  time.Duration
}

func snapshotFlags(cmd *cobra.Command, cfg solveConfig, budget, limit time.Duration) flagOverrides {
	return flagOverrides{cmd: cmd, cfg: cfg, budget: budget, limit: limit}
}

// apply copies every explicitly set flag value into dst, overriding
// whatever the config file provided.
func (f flagOverrides) apply(dst *solveConfig) {
	set := f.cmd.Flags().Changed
	if set("cities") {
		dst.Cities = f.cfg.Cities
	}
	if set("instance") {
		dst.Instance = f.cfg.Instance
	}
	if set("seed") {
		dst.Seed = f.cfg.Seed
	}
	if set("workers") {
		dst.Workers = f.cfg.Workers
	}
	if set("acceptance") {
		dst.Acceptance = f.cfg.Acceptance
	}
	if set("move") {
		dst.Move = f.cfg.Move
	}
	if set("homebase") {
		dst.Homebase = f.cfg.Homebase
	}
	if set("epsilon") {
		dst.Epsilon = f.cfg.Epsilon
	}
	if set("tabu") {
		dst.TabuCapacity = f.cfg.TabuCapacity
	}
	if set("retries") {
		dst.RetryCap = f.cfg.RetryCap
	}
	if set("iterations") {
		dst.MaxIterations = f.cfg.MaxIterations
	}
	if set("search-budget") {
		dst.SearchBudget = duration(f.budget)
	}
	if set("time-limit") {
		dst.TimeLimit = duration(f.limit)
	}
}

// runSolve executes the merged configuration and prints the summary panel.
func runSolve(cmd *cobra.Command, cfg solveConfig) error {
	logger := loggerFromContext(cmd.Context())

	if cfg.Cities < 2 {
		return fmt.Errorf("cli: need at least 2 cities, got %d", cfg.Cities)
	}

	opts, err := cfg.engineOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	dist, err := synthesize(cfg.Instance, cfg.Cities, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Debug("instance ready", "kind", cfg.Instance, "cities", cfg.Cities, "seed", cfg.Seed)

	// A nil initial tour lets each run draw its own seeded permutation.
	p := newProgress(logger)
	out := cmd.OutOrStdout()

	if cfg.Workers == 0 || cfg.Workers == 1 {
		res, err := ils.Solve(dist, nil, opts)
		if err != nil {
			return err
		}
		// Stable orientation so equal tours always print identically.
		_ = tour.Canonicalize(res.BestTour)
		p.done(fmt.Sprintf("Solved %d cities in %d iterations", cfg.Cities, res.Iterations))
		fmt.Fprintln(out, renderRun("rondo · single run", res))
		return nil
	}

	multi, err := ils.SolveParallel(dist, nil, opts, cfg.Workers)
	if err != nil {
		return err
	}
	_ = tour.Canonicalize(multi.Best.BestTour)
	p.done(fmt.Sprintf("Solved %d cities with %d workers", cfg.Cities, multi.Completed+multi.Failed))
	fmt.Fprintln(out, renderMulti("rondo · multi-start", multi))
	return nil
}
