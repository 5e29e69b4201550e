package config

// GenerateConfig is the root configuration for one stimulus
// generation run.
type GenerateConfig struct {
	Kinetics KineticsConfig `yaml:"kinetics"`
	Sampling SamplingConfig `yaml:"sampling"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Output   OutputConfig   `yaml:"output"`
}

// KineticsConfig selects and parameterizes the EPSP model. Only the
// block matching Type is used.
type KineticsConfig struct {
	Type string     `yaml:"type"` // "fast" or "slow"
	Fast FastConfig `yaml:"fast"`
	Slow SlowConfig `yaml:"slow"`
}

// FastConfig holds the double-exponential parameters (pA, ms).
type FastConfig struct {
	A1        float64 `yaml:"a1"`
	TauRise1  float64 `yaml:"tau_rise1"`
	TauDecay1 float64 `yaml:"tau_decay1"`
	A2        float64 `yaml:"a2"`
	TauRise2  float64 `yaml:"tau_rise2"`
	TauDecay2 float64 `yaml:"tau_decay2"`
}

// SlowConfig holds the single-exponential parameters (pA, ms).
type SlowConfig struct {
	A        float64 `yaml:"a"`
	TauRise  float64 `yaml:"tau_rise"`
	TauDecay float64 `yaml:"tau_decay"`
}

// SamplingConfig selects the time grid.
type SamplingConfig struct {
	Mode           string  `yaml:"mode"`             // "uniform" or "two_resolution"
	RateKHz        float64 `yaml:"rate_khz"`         // uniform mode
	FineStepMs     float64 `yaml:"fine_step_ms"`     // two_resolution mode
	CoarseStepMs   float64 `yaml:"coarse_step_ms"`   // two_resolution mode
	FineDurationMs float64 `yaml:"fine_duration_ms"` // two_resolution mode
}

// SweepConfig holds total duration and baseline delay.
type SweepConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	DelayMs    float64 `yaml:"delay_ms"`
	AutoDelay  bool    `yaml:"auto_delay"` // derive delay from the stimulus length
}

// OutputConfig holds file destinations.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	File     string `yaml:"file"`      // empty: auto-generated descriptive name
	Comment  string `yaml:"comment"`   // empty: generated audit comment
	NoPlot   bool   `yaml:"no_plot"`   // skip the PNG preview
	PlotFile string `yaml:"plot_file"` // empty: derived from the stimulus filename
}
