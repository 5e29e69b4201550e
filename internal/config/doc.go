// Package config loads and validates generation settings from YAML.
//
// Units follow the lab convention the parameters are quoted in:
// durations, delays and time constants in milliseconds, sampling rate
// in kHz. The builders convert to the core's units (seconds, Hz) in
// one explicit place.
package config
