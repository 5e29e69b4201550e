// Package model defines shared data types for the sim-EPSP stimulus
// generator.
//
// Conventions:
//   - Time: float64 seconds for sweep timestamps; kinetics time
//     constants are in milliseconds (the unit the models are fit in)
//   - Current: float64 picoamps
//   - Errors: sentinel values ErrInvalidParameter and ErrIOFailure,
//     wrapped with parameter/path context via fmt.Errorf
package model
