package generator

import (
	"math/rand"

	"github.com/prixladi/a-mazing/board"
	"github.com/prixladi/a-mazing/maze"
	"github.com/prixladi/a-mazing/runner"
)

func topWallPositions(colCount, rowCount int) []board.Position {
	positions := make([]board.Position, colCount)
	for x := 0; x < colCount; x++ {
		positions[x] = board.Position{X: x, Y: rowCount - 1}
	}

	return positions
}

func bottomWallPositions(colCount int) []board.Position {
	positions := make([]board.Position, colCount)
	for x := 0; x < colCount; x++ {
		positions[x] = board.Position{X: x, Y: 0}
	}

	return positions
}

func rightWallPositions(colCount, rowCount int) []board.Position {
	positions := make([]board.Position, rowCount)
	for y := 0; y < rowCount; y++ {
		positions[y] = board.Position{X: colCount - 1, Y: y}
	}

	return positions
}

func leftWallPositions(rowCount int) []board.Position {
	positions := make([]board.Position, rowCount)
	for y := 0; y < rowCount; y++ {
		positions[y] = board.Position{X: 0, Y: y}
	}

	return positions
}

// emptyPositionsInRectangle returns every position in the half-open
// rectangle [topLeft.X, bottomRight.X) x [bottomRight.Y, topLeft.Y)
// not present in any of the used groups.
func emptyPositionsInRectangle(topLeft, bottomRight board.Position, used ...[]board.Position) []board.Position {
	occupied := make(map[board.Position]struct{})
	for _, group := range used {
		for _, p := range group {
			occupied[p] = struct{}{}
		}
	}

	var empty []board.Position
	for x := topLeft.X; x < bottomRight.X; x++ {
		for y := bottomRight.Y; y < topLeft.Y; y++ {
			p := board.Position{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				empty = append(empty, p)
			}
		}
	}

	return empty
}

// emptyPositionsWithPadding returns the interior of a colCount x
// rowCount board with paddingX columns trimmed from each side and
// paddingY rows trimmed from each side, excluding any position in
// used.
func emptyPositionsWithPadding(colCount, rowCount, paddingX, paddingY int, used ...[]board.Position) []board.Position {
	topLeft := board.Position{X: paddingX, Y: rowCount - paddingY}
	bottomRight := board.Position{X: colCount - paddingX, Y: paddingY}

	return emptyPositionsInRectangle(topLeft, bottomRight, used...)
}

// assignCheckpoints gives checkpointPositions ascending levels
// starting at 1, then assigns every exitPosition the next level up —
// reaching any exit completes the terminal tier.
func assignCheckpoints(checkpointPositions, exitPositions []board.Position) []maze.CheckpointSpec {
	specs := make([]maze.CheckpointSpec, 0, len(checkpointPositions)+len(exitPositions))
	for i, p := range checkpointPositions {
		specs = append(specs, maze.CheckpointSpec{Position: p, Level: int32(i + 1)})
	}

	exitLevel := int32(len(checkpointPositions) + 1)
	for _, p := range exitPositions {
		specs = append(specs, maze.CheckpointSpec{Position: p, Level: exitLevel})
	}

	return specs
}

func isSolvable(cfg maze.Config, walls []board.Position) (bool, error) {
	m, err := maze.New(cfg)
	if err != nil {
		return false, err
	}
	result, err := runner.New(m).Run(walls)
	if err != nil {
		return false, err
	}

	return result != nil, nil
}

// randomSolvableWalls greedily accepts random candidate positions as
// hard walls up to wallCount, rejecting any candidate that would make
// cfg unsolvable (checked by running cfg's runner with the
// walls-so-far as soft walls against a cap equal to wallCount).
func randomSolvableWalls(cfg maze.Config, emptyPositions []board.Position, wallCount int, rng *rand.Rand) ([]board.Position, error) {
	walls := make([]board.Position, 0, wallCount)
	for _, p := range randomShuffle(emptyPositions, rng) {
		if len(walls) >= wallCount {
			break
		}

		walls = append(walls, p)
		ok, err := isSolvable(cfg, walls)
		if err != nil {
			return nil, err
		}
		if !ok {
			walls = walls[:len(walls)-1]
		}
	}

	return walls, nil
}

func randomIntInRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

func randomUint32InRange(rng *rand.Rand, lo, hi uint32) uint32 {
	return lo + uint32(rng.Int63n(int64(hi-lo)))
}

func randomShuffle(positions []board.Position, rng *rand.Rand) []board.Position {
	shuffled := make([]board.Position, len(positions))
	copy(shuffled, positions)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return shuffled
}

func randomPositions(positions []board.Position, n int, rng *rand.Rand) []board.Position {
	shuffled := randomShuffle(positions, rng)
	if n > len(shuffled) {
		n = len(shuffled)
	}

	return shuffled[:n]
}
