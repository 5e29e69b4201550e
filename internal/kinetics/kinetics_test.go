package kinetics

import (
	"math"
	"testing"

	"github.com/rickgao/epsp-stim/internal/model"
)

func defaultFast() model.FastRisingParams {
	var p model.FastRisingParams
	p.Defaults()
	return p
}

func defaultSlow() model.SlowRisingParams {
	var p model.SlowRisingParams
	p.Defaults()
	return p
}

func TestZeroAtOnset(t *testing.T) {
	if got := FastRising(0, defaultFast()); got != 0 {
		t.Errorf("FastRising(0) = %g, want 0", got)
	}
	if got := SlowRising(0, defaultSlow()); got != 0 {
		t.Errorf("SlowRising(0) = %g, want 0", got)
	}

	// Holds for arbitrary valid parameters, not just the defaults.
	odd := model.FastRisingParams{A1: -3.2, TauRise1: 0.5, TauDecay1: 7, A2: 900, TauRise2: 0.001, TauDecay2: 0.1}
	if got := FastRising(0, odd); got != 0 {
		t.Errorf("FastRising(0, odd) = %g, want 0", got)
	}
}

func TestNegativeTimeIsZero(t *testing.T) {
	if got := FastRising(-1e-9, defaultFast()); got != 0 {
		t.Errorf("FastRising(-1e-9) = %g, want 0", got)
	}
	if got := SlowRising(-5, defaultSlow()); got != 0 {
		t.Errorf("SlowRising(-5) = %g, want 0", got)
	}
}

// The slow-rising model has a closed-form peak: dI/dt = 0 at
// t* = TauRise * ln(1 + TauDecay/TauRise).
func TestSlowRisingAnalyticPeak(t *testing.T) {
	p := defaultSlow()
	tPeak := p.TauRise * math.Log(1+p.TauDecay/p.TauRise) // 9.1629... ms
	if tPeak < 9 || tPeak > 9.2 {
		t.Fatalf("analytic peak time = %g ms, want within [9, 9.2]", tPeak)
	}

	peak := SlowRising(tPeak, p)
	if peak < 48.5 || peak > 49.5 {
		t.Errorf("peak current = %g pA, want ~49", peak)
	}

	// Neighbors on either side must not exceed the analytic peak.
	if SlowRising(tPeak-0.1, p) > peak || SlowRising(tPeak+0.1, p) > peak {
		t.Error("neighbors of analytic peak exceed it")
	}
}

func TestFastRisingIsSumOfComponents(t *testing.T) {
	p := defaultFast()
	only1 := model.FastRisingParams{A1: p.A1, TauRise1: p.TauRise1, TauDecay1: p.TauDecay1,
		A2: 0, TauRise2: p.TauRise2, TauDecay2: p.TauDecay2}
	only2 := model.FastRisingParams{A1: 0, TauRise1: p.TauRise1, TauDecay1: p.TauDecay1,
		A2: p.A2, TauRise2: p.TauRise2, TauDecay2: p.TauDecay2}

	for _, tm := range []float64{0.01, 0.05, 0.5, 1, 5, 20, 100} {
		sum := FastRising(tm, only1) + FastRising(tm, only2)
		got := FastRising(tm, p)
		if math.Abs(got-sum) > 1e-12*math.Abs(sum) {
			t.Errorf("t=%g: FastRising = %g, component sum = %g", tm, got, sum)
		}
	}
}

func TestNegativeAmplitudeInvertsSign(t *testing.T) {
	p := defaultSlow()
	p.A = -p.A
	if got := SlowRising(5, p); got >= 0 {
		t.Errorf("SlowRising(5) with A=-150 = %g, want < 0", got)
	}
}

func TestCurrentDispatch(t *testing.T) {
	fk := model.FastKinetics(defaultFast())
	sk := model.SlowKinetics(defaultSlow())

	if got, want := Current(2, fk), FastRising(2, fk.Fast); got != want {
		t.Errorf("Current(fast) = %g, want %g", got, want)
	}
	if got, want := Current(2, sk), SlowRising(2, sk.Slow); got != want {
		t.Errorf("Current(slow) = %g, want %g", got, want)
	}
}
