// Package synth composes a time base and a kinetics model into the
// full stimulus waveform.
//
// This is the seam where the two unit systems meet: sweep timestamps
// are seconds, the kinetics models run in milliseconds. The conversion
// happens here, explicitly, and nowhere else.
package synth
