package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrajectoryConfig describes a linear trajectory, loadable from a YAML file.
// Each step becomes a Timeout with a constant cost; Combine names the
// operator used to fold per-replication totals into a single figure.
type TrajectoryConfig struct {
	Steps   []StepConfig `yaml:"steps"`
	Combine string       `yaml:"combine"` // operator tag, "+" when empty
}

// StepConfig holds one step's parameters.
type StepConfig struct {
	Tag      string  `yaml:"tag"`
	Cost     float64 `yaml:"cost"`
	Count    int     `yaml:"count"` // 0 means the default of 1
	Priority int     `yaml:"priority"`
}

// LoadTrajectoryConfig reads and parses a YAML trajectory definition.
func LoadTrajectoryConfig(path string) (*TrajectoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trajectory config: %w", err)
	}
	var cfg TrajectoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing trajectory config: %w", err)
	}
	return &cfg, nil
}

// Validate checks step parameters and the combine operator. Operator
// validation happens here, before a simulation starts: an unrecognized tag
// must fail configuration, never default at run time.
func (c *TrajectoryConfig) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("trajectory has no steps")
	}
	for i, s := range c.Steps {
		if s.Cost < 0 {
			return fmt.Errorf("step %d (%s): cost must be non-negative, got %f", i, s.Tag, s.Cost)
		}
		if s.Count < 0 {
			return fmt.Errorf("step %d (%s): count must be non-negative, got %d", i, s.Tag, s.Count)
		}
	}
	if c.Combine != "" {
		if len(c.Combine) != 1 {
			return fmt.Errorf("combine must be a single operator character, got %q", c.Combine)
		}
		if _, err := Combinator(c.Combine[0]); err != nil {
			return fmt.Errorf("combine: %w", err)
		}
	}
	return nil
}

// CombineOp returns the configured fold operator, defaulting to addition.
// Call Validate first; an invalid tag surfaces here as an error as well.
func (c *TrajectoryConfig) CombineOp() (BinaryOp, error) {
	if c.Combine == "" {
		return Combinator('+')
	}
	return Combinator(c.Combine[0])
}

// Build constructs the chain the config describes.
func (c *TrajectoryConfig) Build() *Chain {
	chain := NewChain()
	for _, s := range c.Steps {
		step := NewTimeout(NewConstant(s.Cost), s.Priority)
		step.SetTag(s.Tag)
		if s.Count > 0 {
			step.SetCount(s.Count)
		}
		chain.Append(step)
	}
	return chain
}
