package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/synth"
)

// Metrics summarizes how two waveforms on a shared grid relate.
type Metrics struct {
	APeak       model.PeakInfo // peak of the first waveform
	BPeak       model.PeakInfo // peak of the second waveform
	RMS         float64        // root-mean-square of the pointwise difference (pA)
	MaxAbsDiff  float64        // largest pointwise difference magnitude (pA)
	Correlation float64        // Pearson correlation of the current traces
}

// Compute derives Metrics for two waveforms. Both must have the same
// sample count and timestamps (the shared-grid precondition the
// comparison utility guarantees by construction).
func Compute(a, b *model.Waveform) (Metrics, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return Metrics{}, fmt.Errorf("%w: waveform is empty", model.ErrInvalidParameter)
	}
	if a.Len() != b.Len() {
		return Metrics{}, fmt.Errorf("%w: waveform lengths differ: %d vs %d",
			model.ErrInvalidParameter, a.Len(), b.Len())
	}

	ia := a.Currents()
	ib := b.Currents()

	diff := make([]float64, len(ia))
	copy(diff, ia)
	floats.Sub(diff, ib)

	maxAbs := 0.0
	for _, d := range diff {
		if ad := math.Abs(d); ad > maxAbs {
			maxAbs = ad
		}
	}

	return Metrics{
		APeak:       synth.Peak(a),
		BPeak:       synth.Peak(b),
		RMS:         math.Sqrt(floats.Dot(diff, diff) / float64(len(diff))),
		MaxAbsDiff:  maxAbs,
		Correlation: stat.Correlation(ia, ib, nil),
	}, nil
}
