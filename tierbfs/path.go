package tierbfs

import "github.com/prixladi/a-mazing/board"

// WitnessPath reconstructs a deterministic shortest path achieving r's
// score by walking backward from the exit position through the
// distance table Solve built, descending the steepest gradient at
// each tier boundary. b must be the same board (ignoring soft walls
// placed after the fact — the tile kinds it reads never change)
// passed to Solve.
//
// It panics with *ReconstructionError if the walk reaches a cell none
// of whose neighbors has a recorded distance at the current tier
// level, or fails to reach an entrypoint within its safety budget — a
// fatal invariant violation in the distance table, not a condition
// callers can recover from.
func (r *Run) WitnessPath(b *board.Board) []board.Position {
	if r.k == 0 {
		return []board.Position{r.exitPos}
	}

	path := []board.Position{r.exitPos}
	current := r.exitPos

	previousLevel := r.tiers[r.k-1]
	remaining := append(TierSequence(nil), r.tiers[:r.k-1]...)
	currentLevel, remaining, hasCurrent := popLevel(remaining)

	budget := int(r.distance) + 2
	for steps := 0; ; steps++ {
		if steps > budget {
			panic(&ReconstructionError{Distance: r.distance, Steps: steps})
		}

		tile := b.At(current)

		if hasCurrent && tile.Kind == board.Checkpoint && tile.Level == currentLevel {
			previousLevel = currentLevel
			currentLevel, remaining, hasCurrent = popLevel(remaining)
		} else if !hasCurrent && tile.Kind == board.Entrypoint {
			break
		}

		next, ok := r.bestNeighbor(b, current, previousLevel)
		if !ok {
			panic(&ReconstructionError{Distance: r.distance, Steps: steps})
		}
		path = append(path, next)
		current = next
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// popLevel pops the top (last) element of the remaining-levels stack,
// reporting whether one was present.
func popLevel(remaining TierSequence) (int32, TierSequence, bool) {
	if len(remaining) == 0 {
		return 0, remaining, false
	}
	top := remaining[len(remaining)-1]

	return top, remaining[:len(remaining)-1], true
}

// bestNeighbor returns the 4-connected neighbor of p with the smallest
// recorded distance at tier level, in the fixed N/S/E/W enumeration
// order used throughout this module so ties resolve to the
// earliest-enumerated neighbor.
func (r *Run) bestNeighbor(b *board.Board, p board.Position, level int32) (board.Position, bool) {
	tierPos := r.tierPosition(level)
	if tierPos < 0 {
		return board.Position{}, false
	}

	var best board.Position
	var bestDist int32
	found := false
	for _, np := range board.Neighbors(p) {
		if !b.InBounds(np) {
			continue
		}
		d := r.distances[r.cellIndex(np)*r.k+tierPos]
		if d < 0 {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = np, d, true
		}
	}

	return best, found
}

func (r *Run) tierPosition(level int32) int {
	for i, l := range r.tiers {
		if l == level {
			return i
		}
	}

	return -1
}

func (r *Run) cellIndex(p board.Position) int {
	return p.Y*r.colCount + p.X
}
