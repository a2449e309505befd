package generator

import (
	"math/rand"

	"github.com/prixladi/a-mazing/maze"
)

const (
	vanillaColCount = 20
	vanillaRowCount = 10
)

var (
	vanillaEntrypointRange  = [2]int{1, 4}
	vanillaCheckpointRange  = [2]int{2, 4}
	vanillaExitRange        = [2]int{1, 4}
	vanillaWallRange        = [2]int{10, 21}
	vanillaMaxSoftWallRange = [2]uint32{15, 26}
)

// Vanilla generates a 20x10 maze with randomly placed entrypoints
// (1-3 of them, on the left wall), exits (1-3, on the right wall) that
// double as the terminal checkpoint tier, 2-3 interior checkpoints,
// and 10-20 generator-placed hard walls guaranteed not to make the
// maze unsolvable.
func Vanilla(opts ...Option) (maze.Config, error) {
	cfg := newConfig(opts...)

	return generateVanilla(cfg.rng)
}

func generateVanilla(rng *rand.Rand) (maze.Config, error) {
	entrypointCount := randomIntInRange(rng, vanillaEntrypointRange[0], vanillaEntrypointRange[1])
	checkpointCount := randomIntInRange(rng, vanillaCheckpointRange[0], vanillaCheckpointRange[1])
	exitCount := randomIntInRange(rng, vanillaExitRange[0], vanillaExitRange[1])
	wallCount := randomIntInRange(rng, vanillaWallRange[0], vanillaWallRange[1])
	maxSoftWallCount := randomUint32InRange(rng, vanillaMaxSoftWallRange[0], vanillaMaxSoftWallRange[1])

	entrypoints := randomPositions(leftWallPositions(vanillaRowCount), entrypointCount, rng)
	exits := randomPositions(rightWallPositions(vanillaColCount, vanillaRowCount), exitCount, rng)

	empty := emptyPositionsWithPadding(vanillaColCount, vanillaRowCount, 2, 0, entrypoints, exits)
	checkpointPositions := randomPositions(empty, checkpointCount, rng)

	empty = emptyPositionsWithPadding(vanillaColCount, vanillaRowCount, 1, 0, entrypoints, exits, checkpointPositions)
	checkpoints := assignCheckpoints(checkpointPositions, exits)

	cfg := maze.Config{
		ColCount:         vanillaColCount,
		RowCount:         vanillaRowCount,
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
