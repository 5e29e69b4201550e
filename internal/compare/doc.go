// Package compare computes summary statistics between two waveforms
// sampled on the same grid, for the fast-vs-slow comparison report.
// It performs no synthesis of its own: waveforms come in finished and
// are read-only here.
package compare
