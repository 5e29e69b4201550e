// Package kinetics implements the two sim-EPSP current models as pure
// functions of elapsed time since stimulus onset.
//
// Time is in milliseconds (the unit the time constants are fit in);
// current is in picoamps. Both models evaluate to 0 at t = 0 and for
// negative t, and apply no clamping of negative current.
package kinetics
