package runner

import (
	"fmt"

	"github.com/prixladi/a-mazing/board"
)

// ErrTooManySoftWalls is returned when a Run call supplies more soft
// walls than the maze's configured cap.
type ErrTooManySoftWalls struct{ Limit uint32 }

func (e *ErrTooManySoftWalls) Error() string {
	return fmt.Sprintf("runner: soft wall count exceeds limit of %d", e.Limit)
}

// ErrWallOutOfBounds is returned when a soft wall lies outside the
// maze's board.
type ErrWallOutOfBounds struct{ Position board.Position }

func (e *ErrWallOutOfBounds) Error() string {
	return fmt.Sprintf("runner: soft wall at %v is out of bounds", e.Position)
}

// ErrOverlappingWall is returned when a soft wall's target tile is not
// Empty — including when it collides with an earlier soft wall in the
// same call.
type ErrOverlappingWall struct{ Position board.Position }

func (e *ErrOverlappingWall) Error() string {
	return fmt.Sprintf("runner: soft wall at %v does not target an empty tile", e.Position)
}
