// Package input carries pointer state across the host -> simulation boundary.
package input

// State is one frame's pointer sample. The host owns previous-frame
// tracking; the simulation only ever sees the current sample plus the
// previous position the host retained.
type State struct {
	X, Y  float64
	Left  bool
	Right bool
}
