package config

import (
	"fmt"

	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/timebase"
)

// Unit conversions between the config's lab units and the core's.
const (
	hzPerKHz     = 1000.0
	secondsPerMs = 0.001
)

// BuildKinetics converts the active kinetics block into the core's
// tagged parameter variant.
func (c *GenerateConfig) BuildKinetics() (model.Kinetics, error) {
	switch c.Kinetics.Type {
	case "fast":
		return model.FastKinetics(model.FastRisingParams{
			A1:        c.Kinetics.Fast.A1,
			TauRise1:  c.Kinetics.Fast.TauRise1,
			TauDecay1: c.Kinetics.Fast.TauDecay1,
			A2:        c.Kinetics.Fast.A2,
			TauRise2:  c.Kinetics.Fast.TauRise2,
			TauDecay2: c.Kinetics.Fast.TauDecay2,
		}), nil
	case "slow":
		return model.SlowKinetics(model.SlowRisingParams{
			A:        c.Kinetics.Slow.A,
			TauRise:  c.Kinetics.Slow.TauRise,
			TauDecay: c.Kinetics.Slow.TauDecay,
		}), nil
	default:
		return model.Kinetics{}, fmt.Errorf("%w: kinetics type %q", model.ErrInvalidParameter, c.Kinetics.Type)
	}
}

// BuildTimeBase converts the sampling and sweep blocks into a time
// base, switching ms/kHz to s/Hz here and nowhere else.
func (c *GenerateConfig) BuildTimeBase() (*timebase.TimeBase, error) {
	duration := c.Sweep.DurationMs * secondsPerMs
	delay := c.Sweep.DelayMs * secondsPerMs

	switch c.Sampling.Mode {
	case "uniform":
		rate := c.Sampling.RateKHz * hzPerKHz
		if c.Sweep.AutoDelay {
			return timebase.UniformAutoDelay(rate, duration)
		}
		return timebase.Uniform(rate, duration, delay)
	case "two_resolution":
		return timebase.TwoResolution(
			c.Sampling.FineStepMs*secondsPerMs,
			c.Sampling.CoarseStepMs*secondsPerMs,
			c.Sampling.FineDurationMs*secondsPerMs,
			duration,
			delay,
		)
	default:
		return nil, fmt.Errorf("%w: sampling mode %q", model.ErrInvalidParameter, c.Sampling.Mode)
	}
}
