package maze

import "github.com/prixladi/a-mazing/board"

// CheckpointSpec pairs a position with the tier level it marks.
type CheckpointSpec struct {
	Position board.Position
	Level    int32
}

// Config is the user-supplied description of a maze: its dimensions,
// soft-wall budget, and the declaration-ordered lists of entrypoints,
// checkpoints, and hard walls. New validates a Config into a Maze.
type Config struct {
	ColCount, RowCount int
	MaxSoftWallCount   uint32
	Entrypoints        []board.Position
	Checkpoints        []CheckpointSpec
	Walls              []board.Position
}
