package atf

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rickgao/epsp-stim/internal/model"
)

// Filename returns the descriptive auto-generated base name (no
// extension) for a stimulus file: the kinetics tag, the amplitudes
// that shape it, and the sampling rate in kHz.
func Filename(kin model.Kinetics, rateHz float64) string {
	kHz := int(rateHz / 1000)
	switch kin.Kind {
	case model.FastRising:
		return fmt.Sprintf("fast_a1_%dpA_a2_%dpA_%dkHz", int(kin.Fast.A1), int(kin.Fast.A2), kHz)
	default:
		return fmt.Sprintf("slow_a_%dpA_tauRise_%dms_%dkHz", int(kin.Slow.A), int(kin.Slow.TauRise), kHz)
	}
}

// Comment builds the audit comment embedded in the file header: the
// full parameter set, delay, sampling, point count and a run ID, so a
// recorded sweep can be traced back to the exact invocation.
func Comment(kin model.Kinetics, w *model.Waveform, runID uuid.UUID) string {
	sampling := fmt.Sprintf("rate=%g Hz", w.Rate)
	if !w.Uniform {
		sampling = fmt.Sprintf("mean_interval=%g s (non-uniform)", w.Interval)
	}
	return fmt.Sprintf("sim-EPSP %s; delay=%g s; %s; points=%d; run_id=%s",
		kin.Summary(), w.Delay, sampling, w.Len(), runID)
}
