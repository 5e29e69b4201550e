package kinetics

import (
	"math"

	"github.com/rickgao/epsp-stim/internal/model"
)

// FastRising evaluates the double-exponential model at elapsed time t
// (ms since onset):
//
//	I(t) = A1*(1-exp(-t/TauRise1))*exp(-t/TauDecay1) +
//	       A2*(1-exp(-t/TauRise2))*exp(-t/TauDecay2)
func FastRising(t float64, p model.FastRisingParams) float64 {
	if t < 0 {
		return 0
	}
	c1 := p.A1 * (1 - math.Exp(-t/p.TauRise1)) * math.Exp(-t/p.TauDecay1)
	c2 := p.A2 * (1 - math.Exp(-t/p.TauRise2)) * math.Exp(-t/p.TauDecay2)
	return c1 + c2
}

// SlowRising evaluates the single-exponential model at elapsed time t
// (ms since onset):
//
//	I(t) = A*(1-exp(-t/TauRise))*exp(-t/TauDecay)
func SlowRising(t float64, p model.SlowRisingParams) float64 {
	if t < 0 {
		return 0
	}
	return p.A * (1 - math.Exp(-t/p.TauRise)) * math.Exp(-t/p.TauDecay)
}

// Current evaluates the active variant of k at elapsed time t (ms).
func Current(t float64, k model.Kinetics) float64 {
	if k.Kind == model.FastRising {
		return FastRising(t, k.Fast)
	}
	return SlowRising(t, k.Slow)
}
