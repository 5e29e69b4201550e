package atf

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rickgao/epsp-stim/internal/model"
)

// optionalRecords is the count declared on the second header line:
// AcquisitionMode, Comment, YTop, YBottom, SweepStartTimesMS,
// SignalsExported, Signals.
const optionalRecords = 7

// dataColumns is fixed: time and one current signal.
const dataColumns = 2

// floatPrecision is the fractional digit count of the 'e'-formatted
// data columns. 13 significant digits round-trip well inside the 1e-9
// relative tolerance the instrument contract requires.
const floatPrecision = 12

// Write serializes the waveform and its audit comment to path,
// creating the parent directory if needed. The file appears atomically
// via temp-file-and-rename.
func Write(path string, w *model.Waveform, comment string) error {
	if w == nil || w.Len() == 0 {
		return fmt.Errorf("%w: waveform is empty", model.ErrInvalidParameter)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", model.ErrIOFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %v", model.ErrIOFailure, dir, err)
	}

	if err := writeBody(tmp, w, comment); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", model.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", model.ErrIOFailure, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: finalize %s: %v", model.ErrIOFailure, path, err)
	}
	return nil
}

func writeBody(f *os.File, w *model.Waveform, comment string) error {
	bw := bufio.NewWriter(f)

	fmt.Fprintf(bw, "ATF\t1.0\n")
	fmt.Fprintf(bw, "%d\t%d\n", optionalRecords, dataColumns)
	fmt.Fprintf(bw, "\"AcquisitionMode=Episodic Stimulation\"\n")
	fmt.Fprintf(bw, "\"Comment=%s\"\n", comment)

	yTop, yBottom := displayRange(w)
	fmt.Fprintf(bw, "\"YTop=%.2f\"\n", yTop)
	fmt.Fprintf(bw, "\"YBottom=%.2f\"\n", yBottom)
	fmt.Fprintf(bw, "\"SweepStartTimesMS=0.000\"\n")
	fmt.Fprintf(bw, "\"SignalsExported=IN 0\"\n")
	fmt.Fprintf(bw, "\"Signals=\tIN 0\"\n")
	fmt.Fprintf(bw, "\"Time (s)\"\t\"IN 0 (pA)\"\n")

	for _, s := range w.Samples {
		bw.WriteString(strconv.FormatFloat(s.T, 'e', floatPrecision, 64))
		bw.WriteByte('\t')
		bw.WriteString(strconv.FormatFloat(s.I, 'e', floatPrecision, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// displayRange pads the current extent by 10% on each side for the
// instrument's display hints.
func displayRange(w *model.Waveform) (top, bottom float64) {
	min, max := w.Samples[0].I, w.Samples[0].I
	for _, s := range w.Samples[1:] {
		if s.I < min {
			min = s.I
		}
		if s.I > max {
			max = s.I
		}
	}
	pad := 0.1 * (max - min)
	return max + pad, min - pad
}
