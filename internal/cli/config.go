package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/rondo/ils"
)

// duration wraps time.Duration so TOML files can carry human-readable
// budgets like "250ms" or "2s".
type duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// solveConfig mirrors the solve command's flags one-to-one; a TOML file
// supplies defaults and explicitly set flags win over file values.
type solveConfig struct {
	Cities   int    `toml:"cities"`
	Instance string `toml:"instance"`
	Seed     int64  `toml:"seed"`
	Workers  int    `toml:"workers"`

	Acceptance string  `toml:"acceptance"`
	Move       string  `toml:"move"`
	Homebase   string  `toml:"homebase"`
	Epsilon    float64 `toml:"epsilon"`

	TabuCapacity  int      `toml:"tabu_capacity"`
	RetryCap      int      `toml:"retry_cap"`
	MaxIterations int      `toml:"max_iterations"`
	SearchBudget  duration `toml:"search_budget"`
	TimeLimit     duration `toml:"time_limit"`
}

// defaultSolveConfig returns the configuration the solve command starts
// from; it mirrors ils.DefaultOptions plus CLI-only instance settings.
func defaultSolveConfig() solveConfig {
	opts := ils.DefaultOptions()
	return solveConfig{
		Cities:        50,
		Instance:      instanceUniform,
		Seed:          1,
		Workers:       0,
		Acceptance:    opts.Acceptance.String(),
		Move:          opts.Move.String(),
		Homebase:      opts.Homebase.String(),
		Epsilon:       opts.Epsilon,
		TabuCapacity:  opts.TabuCapacity,
		RetryCap:      opts.RetryCap,
		MaxIterations: opts.MaxIterations,
	}
}

// loadConfig overlays the TOML file at path onto cfg. Unknown keys are
// rejected so typos surface instead of silently keeping defaults.
func loadConfig(path string, cfg *solveConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cli: read config: %w", err)
	}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("cli: parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("cli: unknown config key %q", undecoded[0].String())
	}
	return nil
}

// parseAcceptance maps a policy name onto its ils enum value.
func parseAcceptance(s string) (ils.Acceptance, error) {
	for _, a := range []ils.Acceptance{ils.FirstImprovement, ils.SteepestAscent} {
		if s == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("cli: unknown acceptance policy %q", s)
}

// parseMove maps an operator name onto its ils enum value.
func parseMove(s string) (ils.Move, error) {
	for _, m := range []ils.Move{ils.SwapMove, ils.ReverseMove} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("cli: unknown move operator %q", s)
}

// parseHomebase maps a policy name onto its ils enum value.
func parseHomebase(s string) (ils.Homebase, error) {
	for _, h := range []ils.Homebase{ils.AlwaysAccept, ils.Greedy, ils.EpsilonGreedy} {
		if s == h.String() {
			return h, nil
		}
	}
	return 0, fmt.Errorf("cli: unknown homebase policy %q", s)
}

// engineOptions converts the merged configuration into ils.Options.
// Numeric ranges are left to ils validation; only the enum names are
// resolved here.
func (c solveConfig) engineOptions() (ils.Options, error) {
	opts := ils.DefaultOptions()

	var err error
	if opts.Acceptance, err = parseAcceptance(c.Acceptance); err != nil {
		return ils.Options{}, err
	}
	if opts.Move, err = parseMove(c.Move); err != nil {
		return ils.Options{}, err
	}
	if opts.Homebase, err = parseHomebase(c.Homebase); err != nil {
		return ils.Options{}, err
	}

	opts.Epsilon = c.Epsilon
	opts.TabuCapacity = c.TabuCapacity
	opts.RetryCap = c.RetryCap
	opts.MaxIterations = c.MaxIterations
	opts.LocalSearchBudget = time.Duration(c.SearchBudget)
	opts.TimeLimit = time.Duration(c.TimeLimit)
	opts.Seed = c.Seed

	return opts, nil
}
