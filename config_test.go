package push

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// configFixture mirrors Config's mapstructure tags with yaml tags of
// the same name, so marshaling it produces a document LoadConfig can
// round-trip through viper's YAML decoder.
type configFixture struct {
	MaxPointsInProgram          int     `yaml:"max_points_in_program"`
	MaxPointsInRandomExpression int     `yaml:"max_points_in_random_expression"`
	MaxExecDepth                int     `yaml:"max_exec_depth"`
	MinRandomInt                int64   `yaml:"min_random_int"`
	MaxRandomInt                int64   `yaml:"max_random_int"`
	StdRandomFloat              float64 `yaml:"std_random_float"`
	GrowthCap                   int     `yaml:"growth_cap"`
	IOQueueCapacity             int     `yaml:"io_queue_capacity"`
	Seed                        int64   `yaml:"seed"`
}

func TestLoadConfigRoundTripsYAML(t *testing.T) {
	fixture := configFixture{
		MaxPointsInProgram:          50,
		MaxPointsInRandomExpression: 10,
		MaxExecDepth:                200,
		MinRandomInt:                -5,
		MaxRandomInt:                5,
		StdRandomFloat:              2,
		GrowthCap:                   1000,
		IOQueueCapacity:             64,
		Seed:                        7,
	}
	doc, err := yaml.Marshal(fixture)
	require.NoError(t, err)

	cfg, err := LoadConfig("yaml", doc)
	require.NoError(t, err)
	require.Equal(t, fixture.MaxPointsInProgram, cfg.MaxPointsInProgram)
	require.Equal(t, fixture.MaxExecDepth, cfg.MaxExecDepth)
	require.Equal(t, fixture.Seed, cfg.Seed)
	// Fields absent from the fixture keep DefaultConfig's values.
	require.Equal(t, 5*time.Second, cfg.EvalTimeLimit)
}

func TestLoadConfigRejectsInvalidDocument(t *testing.T) {
	_, err := LoadConfig("yaml", []byte("max_points_in_program: -1\ngrowth_cap: -1\n"))
	require.Error(t, err)
}

func TestConfigValidateAggregatesEveryProblem(t *testing.T) {
	cfg := Config{MinRandomInt: 10, MaxRandomInt: 0}
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "max_points_in_program")
	require.Contains(t, msg, "max_exec_depth")
	require.Contains(t, msg, "min_random_int")
}
