package timebase

import (
	"fmt"
	"math"

	"github.com/rickgao/epsp-stim/internal/model"
)

// AutoDelayDivisor fixes the auto-delay fraction: the baseline sample
// count is the stimulus sample count divided by this, in integer
// (floor) division.
const AutoDelayDivisor = 64

// TimeBase is the ordered timestamp sequence of a sweep: DelaySamples
// baseline points followed by StimulusSamples stimulus points.
type TimeBase struct {
	Times           []float64 // sweep timestamps (s), strictly increasing
	DelaySamples    int       // leading baseline sample count
	StimulusSamples int       // stimulus portion sample count
	Delay           float64   // realized baseline duration (s)
	Rate            float64   // sampling rate (Hz); 0 for non-uniform grids
	Uniform         bool      // true when the grid spacing is exact
}

// Uniform builds a fixed-rate grid: DelaySamples = round(delay*rate),
// StimulusSamples = round(duration*rate), t[i] = i/rate. The realized
// delay is DelaySamples/rate, which the synthesizer relies on when
// converting sweep time to elapsed model time.
func Uniform(rate, duration, delay float64) (*TimeBase, error) {
	if err := checkUniform(rate, duration); err != nil {
		return nil, err
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: delay must be >= 0, got %g s", model.ErrInvalidParameter, delay)
	}

	delaySamples := int(math.Round(delay * rate))
	stimSamples := int(math.Round(duration * rate))
	return uniformGrid(rate, delaySamples, stimSamples), nil
}

// UniformAutoDelay builds a fixed-rate grid with the delay derived
// from the stimulus portion: DelaySamples = StimulusSamples/64 in
// integer division, computed before the grid is built.
func UniformAutoDelay(rate, duration float64) (*TimeBase, error) {
	if err := checkUniform(rate, duration); err != nil {
		return nil, err
	}

	stimSamples := int(math.Round(duration * rate))
	delaySamples := stimSamples / AutoDelayDivisor
	return uniformGrid(rate, delaySamples, stimSamples), nil
}

func checkUniform(rate, duration float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: sampling_rate must be > 0, got %g Hz", model.ErrInvalidParameter, rate)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0, got %g s", model.ErrInvalidParameter, duration)
	}
	return nil
}

func uniformGrid(rate float64, delaySamples, stimSamples int) *TimeBase {
	n := delaySamples + stimSamples
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / rate
	}
	return &TimeBase{
		Times:           times,
		DelaySamples:    delaySamples,
		StimulusSamples: stimSamples,
		Delay:           float64(delaySamples) / rate,
		Rate:            rate,
		Uniform:         true,
	}
}

// TwoResolution builds a non-uniform grid: fineStep spacing over the
// first fineDuration of the stimulus, coarseStep spacing for the rest
// (endpoint inclusive), and coarseStep spacing over the baseline. All
// arguments are seconds. The resulting grid reports only a mean sample
// interval; exact playback timing needs a uniform grid.
func TwoResolution(fineStep, coarseStep, fineDuration, duration, delay float64) (*TimeBase, error) {
	if fineStep <= 0 {
		return nil, fmt.Errorf("%w: fine_step must be > 0, got %g s", model.ErrInvalidParameter, fineStep)
	}
	if coarseStep <= 0 {
		return nil, fmt.Errorf("%w: coarse_step must be > 0, got %g s", model.ErrInvalidParameter, coarseStep)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be > 0, got %g s", model.ErrInvalidParameter, duration)
	}
	if fineDuration < 0 || fineDuration > duration {
		return nil, fmt.Errorf("%w: fine_duration must be within [0, duration], got %g s", model.ErrInvalidParameter, fineDuration)
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: delay must be >= 0, got %g s", model.ErrInvalidParameter, delay)
	}

	var times []float64

	// Baseline at coarse spacing, strictly below the delay.
	for i := 0; ; i++ {
		t := float64(i) * coarseStep
		if t >= delay {
			break
		}
		times = append(times, t)
	}
	delaySamples := len(times)

	// Fine region over the early stimulus dynamics, [0, fineDuration).
	for i := 0; ; i++ {
		t := float64(i) * fineStep
		if t >= fineDuration {
			break
		}
		times = append(times, delay+t)
	}

	// Coarse region for the remainder, endpoint inclusive. Half a step
	// of slack absorbs accumulated float error at the boundary.
	for i := 0; ; i++ {
		t := fineDuration + float64(i)*coarseStep
		if t > duration+coarseStep/2 {
			break
		}
		times = append(times, delay+t)
	}

	times = dedupeAscending(times)
	return &TimeBase{
		Times:           times,
		DelaySamples:    delaySamples,
		StimulusSamples: len(times) - delaySamples,
		Delay:           delay,
		Rate:            0,
		Uniform:         false,
	}, nil
}

// dedupeAscending drops repeated timestamps so the sequence is
// strictly increasing (the fine/coarse boundary can coincide).
func dedupeAscending(ts []float64) []float64 {
	out := ts[:0]
	for i, t := range ts {
		if i > 0 && t <= out[len(out)-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Interval returns the sample interval in seconds: exact (1/Rate) for
// uniform grids, the mean spacing otherwise.
func (tb *TimeBase) Interval() float64 {
	if tb.Uniform {
		return 1 / tb.Rate
	}
	n := len(tb.Times)
	if n < 2 {
		return 0
	}
	return (tb.Times[n-1] - tb.Times[0]) / float64(n-1)
}

// Len returns the total sample count.
func (tb *TimeBase) Len() int { return len(tb.Times) }
