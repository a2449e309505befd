package runner

import (
	"errors"

	"github.com/prixladi/a-mazing/board"
	"github.com/prixladi/a-mazing/maze"
	"github.com/prixladi/a-mazing/tierbfs"
)

// Runner evaluates soft-wall placements against a fixed Maze. The
// tier sequence is derived once from the maze's original board at
// construction, since soft walls never change a tile's Kind from
// Checkpoint to something else.
type Runner struct {
	maze  *maze.Maze
	tiers tierbfs.TierSequence
}

// New builds a Runner bound to m.
func New(m *maze.Maze) *Runner {
	return &Runner{maze: m, tiers: tierbfs.DeriveTiers(m.Board())}
}

// Result is the outcome of a successful Run: a score and a witness
// path computed lazily on first access.
type Result struct {
	Score uint32

	run   *tierbfs.Run
	board *board.Board
	path  []board.Position
}

// WitnessPath returns the deterministic path realizing r.Score,
// computing and caching it on first call.
func (r *Result) WitnessPath() []board.Position {
	if r.path == nil {
		r.path = r.run.WitnessPath(r.board)
	}

	return r.path
}

// Run clones the maze's board, overlays softWalls in declaration
// order, then attempts the tiered BFS from each entrypoint in
// declaration order, keeping the lowest-scoring successful attempt. A
// later entrypoint never displaces an equal-scoring incumbent.
//
// Returns (nil, nil) when no entrypoint reaches a solution — that is
// not an error. Returns an error if softWalls violates the maze's cap
// or any wall is out of bounds or targets a non-empty tile.
func (rn *Runner) Run(softWalls []board.Position) (*Result, error) {
	limit := rn.maze.MaxSoftWallCount()
	if uint32(len(softWalls)) > limit {
		return nil, &ErrTooManySoftWalls{Limit: limit}
	}

	b := rn.maze.Board().Clone()
	for _, pos := range softWalls {
		if err := b.SetWall(pos); err != nil {
			if errors.Is(err, board.ErrOutOfBounds) {
				return nil, &ErrWallOutOfBounds{Position: pos}
			}

			return nil, &ErrOverlappingWall{Position: pos}
		}
	}

	var best *tierbfs.Run
	for _, start := range rn.maze.Entrypoints() {
		run := tierbfs.Solve(b, rn.tiers, start)
		if run == nil {
			continue
		}
		if best == nil || run.Score() < best.Score() {
			best = run
		}
	}

	if best == nil {
		return nil, nil
	}

	return &Result{Score: best.Score(), run: best, board: b}, nil
}
