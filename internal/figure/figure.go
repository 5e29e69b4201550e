package figure

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rickgao/epsp-stim/internal/compare"
	"github.com/rickgao/epsp-stim/internal/model"
)

var (
	traceBlue  = color.RGBA{B: 200, A: 255}
	traceGreen = color.RGBA{G: 140, A: 255}
	peakRed    = color.RGBA{R: 220, A: 255}
)

// Stimulus renders the generated waveform to a PNG: the full sweep on
// top, the early dynamics (first 10 ms or 10% of the sweep, whichever
// is larger) below, with the peak marked on both.
func Stimulus(path string, w *model.Waveform, peak model.PeakInfo, title string) error {
	lastMs := w.Samples[w.Len()-1].T * 1000
	zoomMs := math.Max(10, lastMs*0.1)

	full, err := tracePlot(title, w, traceBlue, lastMs)
	if err != nil {
		return err
	}
	if err := markPeak(full, peak); err != nil {
		return err
	}

	zoom, err := tracePlot(fmt.Sprintf("Zoomed view (0-%.1f ms)", zoomMs), w, traceBlue, zoomMs)
	if err != nil {
		return err
	}
	if peak.T*1000 <= zoomMs {
		if err := markPeak(zoom, peak); err != nil {
			return err
		}
	}

	return renderColumn(path, full, zoom)
}

// Comparison renders two waveforms on a shared grid: full overlay on
// top, zoomed overlay below, with the summary metrics in the title.
func Comparison(path string, fast, slow *model.Waveform, m compare.Metrics) error {
	lastMs := fast.Samples[fast.Len()-1].T * 1000
	zoomMs := math.Max(10, lastMs*0.1)

	title := fmt.Sprintf("Fast vs slow sim-EPSP (RMS diff %.2f pA, r=%.3f)", m.RMS, m.Correlation)
	full, err := overlayPlot(title, fast, slow, lastMs)
	if err != nil {
		return err
	}
	if err := markPeak(full, m.APeak); err != nil {
		return err
	}
	if err := markPeak(full, m.BPeak); err != nil {
		return err
	}

	zoom, err := overlayPlot(fmt.Sprintf("Zoomed view (0-%.1f ms)", zoomMs), fast, slow, zoomMs)
	if err != nil {
		return err
	}

	return renderColumn(path, full, zoom)
}

// tracePlot draws one current trace up to upToMs.
func tracePlot(title string, w *model.Waveform, c color.Color, upToMs float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Current (pA)"
	p.Add(plotter.NewGrid())

	line, err := newTraceLine(w, c, upToMs)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

// overlayPlot draws two traces on one plot with a legend.
func overlayPlot(title string, fast, slow *model.Waveform, upToMs float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Current (pA)"
	p.Add(plotter.NewGrid())

	fastLine, err := newTraceLine(fast, traceBlue, upToMs)
	if err != nil {
		return nil, err
	}
	slowLine, err := newTraceLine(slow, traceGreen, upToMs)
	if err != nil {
		return nil, err
	}
	p.Add(fastLine, slowLine)
	p.Legend.Add("fast-rising", fastLine)
	p.Legend.Add("slow-rising", slowLine)
	p.Legend.Top = true
	return p, nil
}

func newTraceLine(w *model.Waveform, c color.Color, upToMs float64) (*plotter.Line, error) {
	var xys plotter.XYs
	for _, s := range w.Samples {
		tMs := s.T * 1000
		if tMs > upToMs {
			break
		}
		xys = append(xys, plotter.XY{X: tMs, Y: s.I})
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("build trace line: %w", err)
	}
	line.Color = c
	line.Width = vg.Points(1.25)
	return line, nil
}

func markPeak(p *plot.Plot, peak model.PeakInfo) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: peak.T * 1000, Y: peak.I}})
	if err != nil {
		return fmt.Errorf("build peak marker: %w", err)
	}
	sc.GlyphStyle.Color = peakRed
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	p.Legend.Add(fmt.Sprintf("peak %.1f pA @ %.4f ms", peak.I, peak.T*1000), sc)
	return nil
}

// renderColumn stacks plots vertically into one PNG.
func renderColumn(path string, plots ...*plot.Plot) error {
	img := vgimg.New(8*vg.Inch, vg.Length(len(plots))*3.5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadY: vg.Millimeter * 3}

	column := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		column[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(column, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", model.ErrIOFailure, path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: write %s: %v", model.ErrIOFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", model.ErrIOFailure, path, err)
	}
	return nil
}
