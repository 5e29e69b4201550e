package config

// Default values for optional configuration fields. The kinetics
// defaults are the published parameter sets the models were fit with.
const (
	DefaultKineticsType = "fast"

	DefaultFastA1        = 150.0
	DefaultFastTauRise1  = 0.01
	DefaultFastTauDecay1 = 1.0
	DefaultFastA2        = 70.0
	DefaultFastTauRise2  = 3.0
	DefaultFastTauDecay2 = 20.0

	DefaultSlowA        = 150.0
	DefaultSlowTauRise  = 10.0
	DefaultSlowTauDecay = 15.0

	DefaultSamplingMode   = "uniform"
	DefaultRateKHz        = 20.0
	DefaultFineStepMs     = 0.01
	DefaultCoarseStepMs   = 1.0
	DefaultFineDurationMs = 10.0

	DefaultDurationMs = 100.0

	DefaultOutputDir = "output"
)

func (c *GenerateConfig) applyDefaults() {
	// Kinetics defaults
	if c.Kinetics.Type == "" {
		c.Kinetics.Type = DefaultKineticsType
	}
	applyFastDefaults(&c.Kinetics.Fast)
	applySlowDefaults(&c.Kinetics.Slow)

	// Sampling defaults
	if c.Sampling.Mode == "" {
		c.Sampling.Mode = DefaultSamplingMode
	}
	if c.Sampling.RateKHz == 0 {
		c.Sampling.RateKHz = DefaultRateKHz
	}
	if c.Sampling.FineStepMs == 0 {
		c.Sampling.FineStepMs = DefaultFineStepMs
	}
	if c.Sampling.CoarseStepMs == 0 {
		c.Sampling.CoarseStepMs = DefaultCoarseStepMs
	}
	if c.Sampling.FineDurationMs == 0 {
		c.Sampling.FineDurationMs = DefaultFineDurationMs
	}

	// Sweep defaults
	if c.Sweep.DurationMs == 0 {
		c.Sweep.DurationMs = DefaultDurationMs
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}

func applyFastDefaults(f *FastConfig) {
	if f.A1 == 0 {
		f.A1 = DefaultFastA1
	}
	if f.TauRise1 == 0 {
		f.TauRise1 = DefaultFastTauRise1
	}
	if f.TauDecay1 == 0 {
		f.TauDecay1 = DefaultFastTauDecay1
	}
	if f.A2 == 0 {
		f.A2 = DefaultFastA2
	}
	if f.TauRise2 == 0 {
		f.TauRise2 = DefaultFastTauRise2
	}
	if f.TauDecay2 == 0 {
		f.TauDecay2 = DefaultFastTauDecay2
	}
}

func applySlowDefaults(s *SlowConfig) {
	if s.A == 0 {
		s.A = DefaultSlowA
	}
	if s.TauRise == 0 {
		s.TauRise = DefaultSlowTauRise
	}
	if s.TauDecay == 0 {
		s.TauDecay = DefaultSlowTauDecay
	}
}
