package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *GenerateConfig) Validate() error {
	switch c.Kinetics.Type {
	case "fast", "slow":
	default:
		return fmt.Errorf("kinetics.type must be \"fast\" or \"slow\", got %q", c.Kinetics.Type)
	}

	switch c.Sampling.Mode {
	case "uniform":
		if c.Sampling.RateKHz <= 0 {
			return fmt.Errorf("sampling.rate_khz must be > 0, got %g", c.Sampling.RateKHz)
		}
	case "two_resolution":
		if c.Sampling.FineStepMs <= 0 {
			return fmt.Errorf("sampling.fine_step_ms must be > 0, got %g", c.Sampling.FineStepMs)
		}
		if c.Sampling.CoarseStepMs <= 0 {
			return fmt.Errorf("sampling.coarse_step_ms must be > 0, got %g", c.Sampling.CoarseStepMs)
		}
		if c.Sampling.FineDurationMs < 0 || c.Sampling.FineDurationMs > c.Sweep.DurationMs {
			return fmt.Errorf("sampling.fine_duration_ms must be within [0, sweep.duration_ms], got %g",
				c.Sampling.FineDurationMs)
		}
		if c.Sweep.AutoDelay {
			return errors.New("sweep.auto_delay requires sampling.mode \"uniform\"")
		}
	default:
		return fmt.Errorf("sampling.mode must be \"uniform\" or \"two_resolution\", got %q", c.Sampling.Mode)
	}

	if c.Sweep.DurationMs <= 0 {
		return fmt.Errorf("sweep.duration_ms must be > 0, got %g", c.Sweep.DurationMs)
	}
	if c.Sweep.DelayMs < 0 {
		return fmt.Errorf("sweep.delay_ms must be >= 0, got %g", c.Sweep.DelayMs)
	}
	if c.Sweep.AutoDelay && c.Sweep.DelayMs != 0 {
		return errors.New("sweep.auto_delay and sweep.delay_ms are mutually exclusive")
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}

	return nil
}
