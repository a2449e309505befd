package tierbfs

import "fmt"

// ReconstructionError is the value WitnessPath panics with when the
// backward gradient-descent walk cannot terminate within its D+2 step
// budget, or reaches a cell none of whose neighbors has a recorded
// distance at the current tier level. It signals an internal inconsistency in the distance table
// built by Solve, never a caller mistake, and is therefore a panic
// value rather than a returned error.
type ReconstructionError struct {
	Distance int32
	Steps    int
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("tierbfs: path reconstruction did not converge within %d steps (distance %d)", e.Steps, e.Distance)
}
