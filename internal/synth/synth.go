package synth

import (
	"fmt"
	"math"

	"github.com/rickgao/epsp-stim/internal/kinetics"
	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/timebase"
)

// msPerSecond converts sweep time (s) to kinetics model time (ms).
const msPerSecond = 1000

// Synthesize evaluates the kinetics model over the time base and
// returns the full waveform: zero current for the first DelaySamples
// points, the model evaluated at elapsed-since-onset time for the
// rest.
func Synthesize(tb *timebase.TimeBase, kin model.Kinetics) (*model.Waveform, error) {
	if err := kin.Validate(); err != nil {
		return nil, err
	}
	if tb.Len() == 0 {
		return nil, fmt.Errorf("%w: time base is empty", model.ErrInvalidParameter)
	}

	samples := make([]model.Sample, tb.Len())
	for i, t := range tb.Times {
		s := model.Sample{T: t}
		if i >= tb.DelaySamples {
			s.I = kinetics.Current(elapsedMs(tb, i), kin)
		}
		samples[i] = s
	}

	return &model.Waveform{
		Samples:      samples,
		DelaySamples: tb.DelaySamples,
		Delay:        tb.Delay,
		Rate:         tb.Rate,
		Interval:     tb.Interval(),
		Uniform:      tb.Uniform,
	}, nil
}

// elapsedMs returns the model time (ms since onset) for sample i of
// the stimulus portion. Uniform grids use the index formula
// (i - DelaySamples)/rate so the first stimulus sample lands on
// exactly 0 regardless of float error in the timestamps; non-uniform
// grids subtract the delay from the absolute timestamp.
func elapsedMs(tb *timebase.TimeBase, i int) float64 {
	if tb.Uniform {
		return float64(i-tb.DelaySamples) / tb.Rate * msPerSecond
	}
	return (tb.Times[i] - tb.Delay) * msPerSecond
}

// Peak scans the stimulus portion once and returns the sample with the
// largest current magnitude, first occurrence winning ties. The
// reported time is absolute sweep time, delay included. The zero value
// is returned for a waveform with no stimulus portion.
func Peak(w *model.Waveform) model.PeakInfo {
	if w.StimulusSamples() <= 0 {
		return model.PeakInfo{}
	}

	best := w.DelaySamples
	for i := w.DelaySamples + 1; i < len(w.Samples); i++ {
		if math.Abs(w.Samples[i].I) > math.Abs(w.Samples[best].I) {
			best = i
		}
	}
	return model.PeakInfo{
		I:     w.Samples[best].I,
		T:     w.Samples[best].T,
		Index: best,
	}
}
