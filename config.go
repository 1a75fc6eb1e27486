package push

import (
	"bytes"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// Config holds every recognized Push State option. Zero values are
// not valid configuration; use DefaultConfig and override individual
// fields, or load a complete document with LoadConfig.
type Config struct {
	MaxPointsInProgram          int     `mapstructure:"max_points_in_program"`
	MaxPointsInRandomExpression int     `mapstructure:"max_points_in_random_expression"`
	MaxExecDepth                int     `mapstructure:"max_exec_depth"`
	MinRandomInt                int64   `mapstructure:"min_random_int"`
	MaxRandomInt                int64   `mapstructure:"max_random_int"`
	MeanRandomFloat             float64 `mapstructure:"mean_random_float"`
	StdRandomFloat              float64 `mapstructure:"std_random_float"`
	NewERCNameProbability       float64 `mapstructure:"new_erc_name_probability"`

	// MaxSteps bounds a single interpreter run (zero or negative means
	// unbounded); it is the step budget of §5, which Run reads from the
	// State's Config. Validate does not check it.
	MaxSteps int `mapstructure:"max_steps"`
	// EvalTimeLimit is an optional wall-clock ceiling on a single
	// Run call, checked between steps; zero disables it.
	EvalTimeLimit time.Duration `mapstructure:"eval_time_limit"`
	// GrowthCap is a ceiling on the combined depth of every stack. It
	// is consulted only by the pushes that go through pushChecked
	// (the CODE-building instructions and the DO*RANGE continuation),
	// which drop their item once the total has reached the cap; other
	// pushes do not check it.
	GrowthCap int `mapstructure:"growth_cap"`
	// IOQueueCapacity bounds the INPUT and OUTPUT FIFOs (§6).
	IOQueueCapacity int `mapstructure:"io_queue_capacity"`
	// Seed initializes the deterministic random source.
	Seed int64 `mapstructure:"seed"`
}

// DefaultConfig returns the configuration the reference implementation
// ships with, tuned for interactive use and small autoconstructive
// runs.
func DefaultConfig() Config {
	return Config{
		MaxPointsInProgram:          100,
		MaxPointsInRandomExpression: 25,
		MaxExecDepth:                1000,
		MinRandomInt:                -10,
		MaxRandomInt:                10,
		MeanRandomFloat:             0,
		StdRandomFloat:              1,
		NewERCNameProbability:       0.001,
		MaxSteps:                    10000,
		EvalTimeLimit:               5 * time.Second,
		GrowthCap:                   5000,
		IOQueueCapacity:             1024,
		Seed:                        1,
	}
}

// Validate reports every problem with c at once via a multierror
// rather than failing on the first bad field, so a caller loading a
// hand-edited config file sees the whole picture in one report.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.MaxPointsInProgram <= 0 {
		result = multierror.Append(result, &ConfigError{"max_points_in_program", "must be positive"})
	}
	if c.MaxPointsInRandomExpression <= 0 {
		result = multierror.Append(result, &ConfigError{"max_points_in_random_expression", "must be positive"})
	}
	if c.MaxExecDepth <= 0 {
		result = multierror.Append(result, &ConfigError{"max_exec_depth", "must be positive"})
	}
	if c.MinRandomInt > c.MaxRandomInt {
		result = multierror.Append(result, &ConfigError{"min_random_int", "must be <= max_random_int"})
	}
	if c.StdRandomFloat < 0 {
		result = multierror.Append(result, &ConfigError{"std_random_float", "must be >= 0"})
	}
	if c.NewERCNameProbability < 0 || c.NewERCNameProbability > 1 {
		result = multierror.Append(result, &ConfigError{"new_erc_name_probability", "must be in [0, 1]"})
	}
	if c.GrowthCap <= 0 {
		result = multierror.Append(result, &ConfigError{"growth_cap", "must be positive"})
	}
	if c.IOQueueCapacity <= 0 {
		result = multierror.Append(result, &ConfigError{"io_queue_capacity", "must be positive"})
	}
	return result.ErrorOrNil()
}

// LoadConfig parses a configuration document held in memory (never
// from a file path -- reading config files is a host concern, out of
// this package's scope) and merges it over DefaultConfig. format
// selects the codec understood by viper: "yaml", "json", "toml",
// "hcl", "ini", or "properties" (formats gojq's own indirect
// dependency graph already carries the parsers for).
func LoadConfig(format string, document []byte) (Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(document)); err != nil {
		return Config{}, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
