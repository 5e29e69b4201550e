package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rickgao/epsp-stim/internal/atf"
	"github.com/rickgao/epsp-stim/internal/config"
	"github.com/rickgao/epsp-stim/internal/figure"
	"github.com/rickgao/epsp-stim/internal/model"
	"github.com/rickgao/epsp-stim/internal/synth"
	"github.com/rickgao/epsp-stim/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty: built-in defaults)")
	kineticsType := flag.String("kinetics", "", "override kinetics type: fast or slow")
	outputDir := flag.String("output-dir", "", "override output directory")
	noPlot := flag.Bool("no-plot", false, "skip the PNG preview")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting epspgen",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	var cfg *config.GenerateConfig
	if *configPath == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	if *kineticsType != "" {
		cfg.Kinetics.Type = *kineticsType
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *noPlot {
		cfg.Output.NoPlot = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidParameter):
			logger.Error("invalid parameter", "error", err)
		case errors.Is(err, model.ErrIOFailure):
			logger.Error("output failed", "error", err)
		default:
			logger.Error("generation failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(cfg *config.GenerateConfig, logger *slog.Logger) error {
	runID := uuid.New()

	kin, err := cfg.BuildKinetics()
	if err != nil {
		return err
	}
	tb, err := cfg.BuildTimeBase()
	if err != nil {
		return err
	}

	logger.Info("synthesizing stimulus",
		"run_id", runID,
		"kinetics", kin.Kind.String(),
		"params", kin.Summary(),
		"points", tb.Len(),
		"delay_samples", tb.DelaySamples,
		"uniform", tb.Uniform,
	)

	w, err := synth.Synthesize(tb, kin)
	if err != nil {
		return err
	}
	peak := synth.Peak(w)

	comment := cfg.Output.Comment
	if comment == "" {
		comment = atf.Comment(kin, w, runID)
	}

	base := cfg.Output.File
	if base == "" {
		base = atf.Filename(kin, tb.Rate) + ".atf"
	}
	outPath := filepath.Join(cfg.Output.Dir, base)

	if err := atf.Write(outPath, w, comment); err != nil {
		return err
	}

	logger.Info("stimulus file written",
		"path", outPath,
		"points", w.Len(),
		"duration_ms", w.Samples[w.Len()-1].T*1000,
		"peak_pa", peak.I,
		"peak_ms", peak.T*1000,
	)

	if !cfg.Output.NoPlot {
		plotPath := cfg.Output.PlotFile
		if plotPath == "" {
			ext := filepath.Ext(base)
			plotPath = base[:len(base)-len(ext)] + "_plot.png"
		}
		plotPath = filepath.Join(cfg.Output.Dir, plotPath)

		title := fmt.Sprintf("Simulated EPSP - %s", kin.Summary())
		if err := figure.Stimulus(plotPath, w, peak, title); err != nil {
			return err
		}
		logger.Info("plot written", "path", plotPath)
	}

	// Protocol settings the acquisition side must mirror; the file's
	// time column alone does not control playback timing.
	if w.Uniform {
		logger.Info("protocol configuration",
			"sampling_interval_ms", w.Interval*1000,
			"rate_khz", w.Rate/1000,
			"samples", w.Len(),
		)
	} else {
		logger.Info("protocol configuration (approximate, non-uniform grid)",
			"mean_interval_ms", w.Interval*1000,
			"samples", w.Len(),
		)
	}

	return nil
}
