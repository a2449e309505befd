package board

import "errors"

var (
	// ErrOutOfBounds is returned by SetWall when the position lies
	// outside the board.
	ErrOutOfBounds = errors.New("board: position out of bounds")
	// ErrOccupied is returned by SetWall when the target tile is not
	// Empty.
	ErrOccupied = errors.New("board: tile already occupied")
)
