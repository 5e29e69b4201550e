package model

import "fmt"

// -----------------------------------------------------------------------------
// Kinetics Types
// -----------------------------------------------------------------------------

// KineticsKind selects the shape (rise/decay profile) of the simulated
// current. The two variants form a tagged union dispatched once at
// synthesis time.
type KineticsKind int

const (
	// FastRising is the double-exponential model (two summed
	// components, sub-millisecond rise).
	FastRising KineticsKind = iota

	// SlowRising is the single-exponential model.
	SlowRising
)

// String returns the short tag used in filenames and config files.
func (k KineticsKind) String() string {
	switch k {
	case FastRising:
		return "fast"
	case SlowRising:
		return "slow"
	default:
		return fmt.Sprintf("KineticsKind(%d)", int(k))
	}
}

// FastRisingParams parameterizes the double-exponential model:
//
//	I(t) = A1*(1-exp(-t/TauRise1))*exp(-t/TauDecay1) +
//	       A2*(1-exp(-t/TauRise2))*exp(-t/TauDecay2)
type FastRisingParams struct {
	A1        float64 // Amplitude of first component (pA)
	TauRise1  float64 // Rise time constant of first component (ms)
	TauDecay1 float64 // Decay time constant of first component (ms)
	A2        float64 // Amplitude of second component (pA)
	TauRise2  float64 // Rise time constant of second component (ms)
	TauDecay2 float64 // Decay time constant of second component (ms)
}

// Defaults sets the published fast-rising parameter set.
func (p *FastRisingParams) Defaults() {
	p.A1 = 150
	p.TauRise1 = 0.01
	p.TauDecay1 = 1
	p.A2 = 70
	p.TauRise2 = 3
	p.TauDecay2 = 20
}

// Validate checks that all time constants are positive. Amplitudes may
// be any real; sign determines current direction.
func (p FastRisingParams) Validate() error {
	for _, tc := range []struct {
		name string
		val  float64
	}{
		{"tau_rise1", p.TauRise1},
		{"tau_decay1", p.TauDecay1},
		{"tau_rise2", p.TauRise2},
		{"tau_decay2", p.TauDecay2},
	} {
		if tc.val <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidParameter, tc.name, tc.val)
		}
	}
	return nil
}

// SlowRisingParams parameterizes the single-exponential model:
//
//	I(t) = A*(1-exp(-t/TauRise))*exp(-t/TauDecay)
type SlowRisingParams struct {
	A        float64 // Amplitude (pA)
	TauRise  float64 // Rise time constant (ms)
	TauDecay float64 // Decay time constant (ms)
}

// Defaults sets the published slow-rising parameter set.
func (p *SlowRisingParams) Defaults() {
	p.A = 150
	p.TauRise = 10
	p.TauDecay = 15
}

// Validate checks that both time constants are positive.
func (p SlowRisingParams) Validate() error {
	if p.TauRise <= 0 {
		return fmt.Errorf("%w: tau_rise must be > 0, got %g", ErrInvalidParameter, p.TauRise)
	}
	if p.TauDecay <= 0 {
		return fmt.Errorf("%w: tau_decay must be > 0, got %g", ErrInvalidParameter, p.TauDecay)
	}
	return nil
}

// Kinetics is the tagged parameter variant. Only the field matching
// Kind is meaningful.
type Kinetics struct {
	Kind KineticsKind
	Fast FastRisingParams
	Slow SlowRisingParams
}

// FastKinetics wraps a fast-rising parameter set.
func FastKinetics(p FastRisingParams) Kinetics {
	return Kinetics{Kind: FastRising, Fast: p}
}

// SlowKinetics wraps a slow-rising parameter set.
func SlowKinetics(p SlowRisingParams) Kinetics {
	return Kinetics{Kind: SlowRising, Slow: p}
}

// Validate dispatches to the active variant.
func (k Kinetics) Validate() error {
	switch k.Kind {
	case FastRising:
		return k.Fast.Validate()
	case SlowRising:
		return k.Slow.Validate()
	default:
		return fmt.Errorf("%w: unknown kinetics kind %d", ErrInvalidParameter, int(k.Kind))
	}
}

// Summary returns a one-line audit description of the active parameter
// set, embedded verbatim in the stimulus file comment.
func (k Kinetics) Summary() string {
	switch k.Kind {
	case FastRising:
		p := k.Fast
		return fmt.Sprintf(
			"fast-rising double exponential: A1=%g pA tau_rise1=%g ms tau_decay1=%g ms A2=%g pA tau_rise2=%g ms tau_decay2=%g ms",
			p.A1, p.TauRise1, p.TauDecay1, p.A2, p.TauRise2, p.TauDecay2)
	case SlowRising:
		p := k.Slow
		return fmt.Sprintf(
			"slow-rising single exponential: A=%g pA tau_rise=%g ms tau_decay=%g ms",
			p.A, p.TauRise, p.TauDecay)
	default:
		return "unknown kinetics"
	}
}

// -----------------------------------------------------------------------------
// Waveform Types
// -----------------------------------------------------------------------------

// Sample is one emitted point of the stimulus sweep.
type Sample struct {
	T float64 // Sweep time (s), strictly increasing across a Waveform
	I float64 // Injected current (pA)
}

// Waveform is the full ordered sample sequence: DelaySamples points of
// zero-current baseline followed by the stimulus portion. Constructed
// once per invocation and never mutated afterwards.
type Waveform struct {
	Samples      []Sample
	DelaySamples int     // leading baseline sample count
	Delay        float64 // baseline duration (s)
	Rate         float64 // sampling rate (Hz); 0 for non-uniform grids
	Interval     float64 // sample interval (s); mean interval for non-uniform grids
	Uniform      bool    // false when Interval is only approximate
}

// Len returns the total sample count.
func (w *Waveform) Len() int { return len(w.Samples) }

// StimulusSamples returns the sample count of the stimulus portion.
func (w *Waveform) StimulusSamples() int { return len(w.Samples) - w.DelaySamples }

// Times returns the timestamp column (s).
func (w *Waveform) Times() []float64 {
	ts := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		ts[i] = s.T
	}
	return ts
}

// Currents returns the current column (pA).
func (w *Waveform) Currents() []float64 {
	is := make([]float64, len(w.Samples))
	for i, s := range w.Samples {
		is[i] = s.I
	}
	return is
}

// PeakInfo describes the largest-magnitude current of the stimulus
// portion. T is absolute sweep time, including the delay offset.
type PeakInfo struct {
	I     float64 // signed peak current (pA)
	T     float64 // sweep time of the peak (s)
	Index int     // index into Waveform.Samples
}
