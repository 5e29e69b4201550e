package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/rickgao/epsp-stim/internal/kinetics"
	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/timebase"
)

func defaultFast() model.Kinetics {
	var p model.FastRisingParams
	p.Defaults()
	return model.FastKinetics(p)
}

func defaultSlow() model.Kinetics {
	var p model.SlowRisingParams
	p.Defaults()
	return model.SlowKinetics(p)
}

func TestDelayInvariant(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		delay float64
	}{
		{"20 kHz, 5 ms delay", 20000, 0.005},
		{"10 kHz, 9.17 ms delay", 10000, 0.00917},
		{"1 kHz, no delay", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, err := timebase.Uniform(tt.rate, 0.05, tt.delay)
			if err != nil {
				t.Fatalf("Uniform() error: %v", err)
			}
			w, err := Synthesize(tb, defaultSlow())
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}

			wantZeros := int(math.Round(tt.delay * tt.rate))
			if w.DelaySamples != wantZeros {
				t.Errorf("DelaySamples = %d, want %d", w.DelaySamples, wantZeros)
			}
			for i := 0; i < wantZeros; i++ {
				if w.Samples[i].I != 0 {
					t.Fatalf("Samples[%d].I = %g, want exactly 0", i, w.Samples[i].I)
				}
			}
			// First stimulus sample is onset, which is also 0.
			if got := w.Samples[wantZeros].I; got != 0 {
				t.Errorf("onset sample current = %g, want 0", got)
			}
			// The one after must be nonzero for a positive-amplitude model.
			if got := w.Samples[wantZeros+1].I; got <= 0 {
				t.Errorf("first post-onset current = %g, want > 0", got)
			}
		})
	}
}

// The delay offset must shift, not reshape, the stimulus: each sample
// of the stimulus portion equals the model evaluated at the elapsed
// time implied by its index.
func TestUnitConversionAndOffset(t *testing.T) {
	kin := defaultSlow()
	tb, err := timebase.Uniform(1000, 0.02, 0.01) // 1 kHz: one sample per ms
	if err != nil {
		t.Fatalf("Uniform() error: %v", err)
	}
	w, err := Synthesize(tb, kin)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	for k := 0; k < w.StimulusSamples(); k++ {
		want := kinetics.SlowRising(float64(k), kin.Slow) // k samples past onset = k ms
		got := w.Samples[w.DelaySamples+k].I
		if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
			t.Fatalf("stimulus sample %d = %g, want %g", k, got, want)
		}
	}
}

func TestSynthesizeNonUniform(t *testing.T) {
	tb, err := timebase.TwoResolution(0.00001, 0.001, 0.010, 0.100, 0)
	if err != nil {
		t.Fatalf("TwoResolution() error: %v", err)
	}
	w, err := Synthesize(tb, defaultFast())
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	if w.Uniform {
		t.Error("Uniform flag = true, want false")
	}
	if w.Len() != tb.Len() {
		t.Errorf("Len() = %d, want %d", w.Len(), tb.Len())
	}
	// Non-uniform grid with zero delay: sample i evaluates at its own
	// timestamp converted to ms.
	want := kinetics.FastRising(tb.Times[5]*1000, defaultFast().Fast)
	if got := w.Samples[5].I; got != want {
		t.Errorf("Samples[5].I = %g, want %g", got, want)
	}
}

func TestSynthesizeRejectsInvalidKinetics(t *testing.T) {
	tb, err := timebase.Uniform(20000, 0.1, 0)
	if err != nil {
		t.Fatalf("Uniform() error: %v", err)
	}
	bad := model.SlowKinetics(model.SlowRisingParams{A: 150, TauRise: 0, TauDecay: 15})
	if _, err := Synthesize(tb, bad); !errors.Is(err, model.ErrInvalidParameter) {
		t.Errorf("Synthesize() error = %v, want ErrInvalidParameter", err)
	}
}

func TestPeakSlowDefaults(t *testing.T) {
	delay := 0.005
	tb, err := timebase.Uniform(20000, 0.1, delay)
	if err != nil {
		t.Fatalf("Uniform() error: %v", err)
	}
	w, err := Synthesize(tb, defaultSlow())
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	peak := Peak(w)
	if peak.I < 48.5 || peak.I > 49.5 {
		t.Errorf("peak current = %g pA, want ~49", peak.I)
	}

	elapsedMs := (peak.T - w.Delay) * 1000
	if elapsedMs < 9 || elapsedMs > 9.2 {
		t.Errorf("peak elapsed time = %g ms, want within [9, 9.2]", elapsedMs)
	}
	// Reported time is absolute: it must include the delay offset.
	if peak.T <= delay {
		t.Errorf("peak sweep time = %g s, want > delay %g s", peak.T, delay)
	}
}

func TestPeakFastDefaults(t *testing.T) {
	tb, err := timebase.Uniform(20000, 0.1, 0)
	if err != nil {
		t.Fatalf("Uniform() error: %v", err)
	}
	w, err := Synthesize(tb, defaultFast())
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	peak := Peak(w)
	if peak.I < 138 || peak.I > 143 {
		t.Errorf("peak current = %g pA, want within [138, 143]", peak.I)
	}
	elapsedMs := peak.T * 1000
	if elapsedMs <= 0 || elapsedMs > 0.11 {
		t.Errorf("peak elapsed time = %g ms, want within (0, ~0.1]", elapsedMs)
	}
}

func TestPeakMagnitudeAndTies(t *testing.T) {
	w := &model.Waveform{
		Samples: []model.Sample{
			{T: 0, I: 0},
			{T: 0.001, I: -5},
			{T: 0.002, I: 4},
			{T: 0.003, I: -5}, // magnitude tie with index 1
		},
		DelaySamples: 0,
	}

	peak := Peak(w)
	if peak.Index != 1 {
		t.Errorf("peak Index = %d, want 1 (first occurrence)", peak.Index)
	}
	if peak.I != -5 {
		t.Errorf("peak I = %g, want signed value -5", peak.I)
	}
}

func TestPeakSkipsBaseline(t *testing.T) {
	// A negative-amplitude stimulus must not lose the peak to the
	// zero-current baseline.
	kin := model.SlowKinetics(model.SlowRisingParams{A: -150, TauRise: 10, TauDecay: 15})
	tb, err := timebase.Uniform(20000, 0.1, 0.01)
	if err != nil {
		t.Fatalf("Uniform() error: %v", err)
	}
	w, err := Synthesize(tb, kin)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	peak := Peak(w)
	if peak.I > -48 {
		t.Errorf("peak I = %g, want ~-49", peak.I)
	}
	if peak.Index < w.DelaySamples {
		t.Errorf("peak Index = %d, inside the baseline", peak.Index)
	}
}
