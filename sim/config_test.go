package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleConfig_Pipeline verifies that examples/pipeline.yaml loads,
// validates, and builds the expected chain.
func TestExampleConfig_Pipeline(t *testing.T) {
	// GIVEN the pipeline.yaml example config
	path := filepath.Join("..", "examples", "pipeline.yaml")
	cfg, err := LoadTrajectoryConfig(path)
	require.NoError(t, err, "failed to load pipeline.yaml")

	// THEN validation passes
	require.NoError(t, cfg.Validate(), "validation failed")

	// THEN the steps match the file
	require.Len(t, cfg.Steps, 3, "expected 3 steps")
	assert.Equal(t, "triage", cfg.Steps[0].Tag)
	assert.Equal(t, 1.5, cfg.Steps[0].Cost)
	assert.Equal(t, 1, cfg.Steps[1].Priority)
	assert.Equal(t, "+", cfg.Combine)

	// THEN building yields a chain of the same shape
	chain := cfg.Build()
	require.Equal(t, 3, chain.Len())
	assert.Equal(t, "triage", chain.Head().Tag())
	assert.Equal(t, "wrap-up", chain.Tail().Tag())
	assert.Equal(t, 1, chain.Head().Count(), "count defaults to 1")
}

func TestTrajectoryConfig_Validate_UnknownCombine(t *testing.T) {
	cfg := &TrajectoryConfig{
		Steps:   []StepConfig{{Tag: "a", Cost: 1}},
		Combine: "/",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestTrajectoryConfig_Validate_NegativeCost(t *testing.T) {
	cfg := &TrajectoryConfig{
		Steps: []StepConfig{{Tag: "a", Cost: -0.5}},
	}
	assert.Error(t, cfg.Validate())
}

func TestTrajectoryConfig_Validate_NoSteps(t *testing.T) {
	cfg := &TrajectoryConfig{}
	assert.Error(t, cfg.Validate())
}

func TestTrajectoryConfig_CombineOp_DefaultsToSum(t *testing.T) {
	cfg := &TrajectoryConfig{Steps: []StepConfig{{Cost: 1}}}
	op, err := cfg.CombineOp()
	require.NoError(t, err)
	assert.Equal(t, 5.0, op(2.0, 3.0))
}

func TestLoadTrajectoryConfig_MissingFile(t *testing.T) {
	_, err := LoadTrajectoryConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTrajectoryConfig_MalformedYAML(t *testing.T) {
	// GIVEN a file that is not valid YAML
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [unclosed"), 0o644))

	// WHEN it is loaded
	_, err := LoadTrajectoryConfig(path)

	// THEN parsing fails with a wrapped error
	assert.ErrorContains(t, err, "parsing trajectory config")
}
