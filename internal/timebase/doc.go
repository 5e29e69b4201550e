// Package timebase builds the ordered sequence of sweep timestamps for
// a stimulus: a zero-current baseline (the delay) followed by the
// stimulus portion.
//
// Two grid constructions are supported:
//   - Uniform: a fixed sampling rate, the deterministic path the
//     acquisition instrument can reproduce exactly
//   - TwoResolution: a fine step over the early dynamics and a coarse
//     step for the remainder; the reported sample interval of such a
//     grid is only the mean interval, and consumers are told so via
//     the Uniform flag
package timebase
