package generator

import (
	"math/rand"

	"github.com/prixladi/a-mazing/maze"
)

const (
	waterfallColCount = 10
	waterfallRowCount = 15
)

var (
	waterfallCheckpointRange  = [2]int{3, 4}
	waterfallWallRange        = [2]int{10, 16}
	waterfallMaxSoftWallRange = [2]uint32{10, 21}
)

// Waterfall generates a 10x15 maze whose entire top row is
// entrypoints and whose entire bottom row is exits (the terminal
// checkpoint tier), with 3 interior checkpoints and 10-15
// generator-placed hard walls guaranteed not to make the maze
// unsolvable.
func Waterfall(opts ...Option) (maze.Config, error) {
	cfg := newConfig(opts...)

	return generateWaterfall(cfg.rng)
}

func generateWaterfall(rng *rand.Rand) (maze.Config, error) {
	checkpointCount := randomIntInRange(rng, waterfallCheckpointRange[0], waterfallCheckpointRange[1])
	wallCount := randomIntInRange(rng, waterfallWallRange[0], waterfallWallRange[1])
	maxSoftWallCount := randomUint32InRange(rng, waterfallMaxSoftWallRange[0], waterfallMaxSoftWallRange[1])

	entrypoints := topWallPositions(waterfallColCount, waterfallRowCount)
	exits := bottomWallPositions(waterfallColCount)

	empty := emptyPositionsWithPadding(waterfallColCount, waterfallRowCount, 0, 2, entrypoints, exits)
	checkpointPositions := randomPositions(empty, checkpointCount, rng)

	empty = emptyPositionsWithPadding(waterfallColCount, waterfallRowCount, 0, 1, entrypoints, exits, checkpointPositions)
	checkpoints := assignCheckpoints(checkpointPositions, exits)

	cfg := maze.Config{
		ColCount:         waterfallColCount,
		RowCount:         waterfallRowCount,
		MaxSoftWallCount: uint32(wallCount),
		Entrypoints:      entrypoints,
		Checkpoints:      checkpoints,
	}

	walls, err := randomSolvableWalls(cfg, empty, wallCount, rng)
	if err != nil {
		return maze.Config{}, &ErrInternal{Cause: err}
	}

	cfg.MaxSoftWallCount = maxSoftWallCount
	cfg.Walls = walls

	return cfg, nil
}
