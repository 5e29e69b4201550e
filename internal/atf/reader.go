package atf

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rickgao/epsp-stim/internal/model"
)

// Read parses the data rows of an ATF stimulus file back into a
// waveform. It exists for verification and comparison, not playback:
// the returned DelaySamples is recovered as the leading run of
// exactly-zero currents (one more than the true baseline, since the
// onset sample itself evaluates to zero), and the grid is reported as
// non-uniform because the file does not declare a rate.
func Read(path string) (*model.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", model.ErrIOFailure, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	if !sc.Scan() || !strings.HasPrefix(sc.Text(), "ATF\t") {
		return nil, fmt.Errorf("parse %s: missing ATF magic line", path)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("parse %s: missing record count line", path)
	}
	var nRecords, nColumns int
	if _, err := fmt.Sscanf(sc.Text(), "%d\t%d", &nRecords, &nColumns); err != nil {
		return nil, fmt.Errorf("parse %s: record count line %q: %v", path, sc.Text(), err)
	}
	if nColumns != dataColumns {
		return nil, fmt.Errorf("parse %s: declared %d data columns, want %d", path, nColumns, dataColumns)
	}

	// Skip the optional header records and the column title line.
	for i := 0; i < nRecords+1; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("parse %s: truncated header", path)
		}
	}

	var samples []model.Sample
	row := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		row++
		t, i, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("parse %s: data row %d: %v", path, row, err)
		}
		samples = append(samples, model.Sample{T: t, I: i})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrIOFailure, path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("parse %s: no data rows", path)
	}

	delaySamples := 0
	for _, s := range samples {
		if s.I != 0 {
			break
		}
		delaySamples++
	}
	if delaySamples == len(samples) {
		delaySamples = 0 // all-zero trace carries no onset marker
	}

	w := &model.Waveform{
		Samples:      samples,
		DelaySamples: delaySamples,
		Uniform:      false,
	}
	if delaySamples > 0 {
		w.Delay = samples[delaySamples].T
	}
	if len(samples) > 1 {
		w.Interval = (samples[len(samples)-1].T - samples[0].T) / float64(len(samples)-1)
	}
	return w, nil
}

func parseRow(line string) (t, i float64, err error) {
	cols := strings.Split(line, "\t")
	if len(cols) != dataColumns {
		return 0, 0, fmt.Errorf("got %d columns, want %d", len(cols), dataColumns)
	}
	if t, err = strconv.ParseFloat(cols[0], 64); err != nil {
		return 0, 0, fmt.Errorf("time %q: %v", cols[0], err)
	}
	if i, err = strconv.ParseFloat(cols[1], 64); err != nil {
		return 0, 0, fmt.Errorf("current %q: %v", cols[1], err)
	}
	return t, i, nil
}
