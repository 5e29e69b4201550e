// Command epspcompare synthesizes both kinetics variants on a shared
// uniform grid and reports how they differ: peak statistics, RMS and
// maximum pointwise difference, correlation, and a side-by-side
// figure.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rickgao/epsp-stim/internal/compare"
	"github.com/rickgao/epsp-stim/internal/figure"
	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/synth"
	"github.com/rickgao/epsp-stim/internal/timebase"
	"github.com/rickgao/epsp-stim/internal/version"
)

func main() {
	rateKHz := flag.Float64("rate-khz", 20, "sampling rate (kHz)")
	durationMs := flag.Float64("duration-ms", 100, "sweep duration (ms)")
	outputDir := flag.String("output-dir", "output", "output directory for the comparison figure")
	noPlot := flag.Bool("no-plot", false, "skip the PNG figure")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting epspcompare",
		"version", version.Version,
		"rate_khz", *rateKHz,
		"duration_ms", *durationMs,
	)

	tb, err := timebase.Uniform(*rateKHz*1000, *durationMs/1000, 0)
	if err != nil {
		logger.Error("invalid time base", "error", err)
		os.Exit(1)
	}

	var fp model.FastRisingParams
	fp.Defaults()
	var sp model.SlowRisingParams
	sp.Defaults()

	fast, err := synth.Synthesize(tb, model.FastKinetics(fp))
	if err != nil {
		logger.Error("fast synthesis failed", "error", err)
		os.Exit(1)
	}
	slow, err := synth.Synthesize(tb, model.SlowKinetics(sp))
	if err != nil {
		logger.Error("slow synthesis failed", "error", err)
		os.Exit(1)
	}

	m, err := compare.Compute(fast, slow)
	if err != nil {
		logger.Error("comparison failed", "error", err)
		os.Exit(1)
	}

	logger.Info("fast-rising peak", "pa", m.APeak.I, "ms", m.APeak.T*1000)
	logger.Info("slow-rising peak", "pa", m.BPeak.I, "ms", m.BPeak.T*1000)
	logger.Info("difference",
		"rms_pa", m.RMS,
		"max_abs_pa", m.MaxAbsDiff,
		"correlation", m.Correlation,
	)

	if !*noPlot {
		path := filepath.Join(*outputDir, "epsp_comparison.png")
		if err := figure.Comparison(path, fast, slow, m); err != nil {
			logger.Error("figure failed", "error", err)
			os.Exit(1)
		}
		logger.Info("comparison figure written", "path", path)
	}
}
