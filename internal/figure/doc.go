// Package figure renders PNG previews of generated stimuli: a full
// trace with a zoomed view of the early dynamics, and a side-by-side
// fast-vs-slow comparison. Figures are documentation for the
// experimenter; all numbers plotted here were computed upstream and
// are consumed read-only.
package figure
