package maze

import (
	"errors"
	"fmt"

	"github.com/prixladi/a-mazing/board"
)

// ErrNoEntrypoint is returned when a Config declares zero entrypoints.
var ErrNoEntrypoint = errors.New("maze: no entrypoint declared")

// ErrNoCheckpoint is returned when a Config declares zero checkpoints.
var ErrNoCheckpoint = errors.New("maze: no checkpoint declared")

// InvalidSizeError is returned when col_count*row_count < 4.
type InvalidSizeError struct{ Size int }

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("maze: invalid size %d (minimum is 4)", e.Size)
}

// OutOfBoundsError is returned when a declared special tile (entrypoint,
// checkpoint, or wall) lies outside the board.
type OutOfBoundsError struct {
	Position board.Position
	Kind     board.Kind
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("maze: %s at %v is out of bounds", e.Kind, e.Position)
}

// OverlapError is returned when two declared special tiles share a
// position. Existing is the kind placed first (per the fixed
// entrypoints→checkpoints→walls ordering); Incoming is the kind being
// placed when the collision was detected.
type OverlapError struct {
	Position           board.Position
	Existing, Incoming board.Kind
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("maze: %v already holds %s, cannot place %s", e.Position, e.Existing, e.Incoming)
}
