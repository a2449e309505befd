package maze

import "github.com/prixladi/a-mazing/board"

// Maze is an immutable bundle of a validated board, its ordered
// entrypoints, and the soft-wall cap a Runner must respect. It owns
// its board; callers never mutate it directly.
type Maze struct {
	board            *board.Board
	entrypoints      []board.Position
	maxSoftWallCount uint32
}

// Board returns the maze's board. The board must not be mutated by
// callers; package runner clones it before applying soft walls.
func (m *Maze) Board() *board.Board { return m.board }

// Entrypoints returns the ordered entrypoint positions, equal to the
// set of positions whose tile is Entrypoint, in declaration order.
func (m *Maze) Entrypoints() []board.Position { return m.entrypoints }

// MaxSoftWallCount returns the soft-wall budget a Runner invocation
// must not exceed.
func (m *Maze) MaxSoftWallCount() uint32 { return m.maxSoftWallCount }

// New validates cfg and, on success, returns an immutable Maze.
// Validation short-circuits on the first failure, in this fixed
// order: size, entrypoint presence, checkpoint presence, then
// per-tile placement in the order entrypoints → checkpoints → walls.
func New(cfg Config) (*Maze, error) {
	size := cfg.ColCount * cfg.RowCount
	if size < 4 {
		return nil, &InvalidSizeError{Size: size}
	}
	if len(cfg.Entrypoints) == 0 {
		return nil, ErrNoEntrypoint
	}
	if len(cfg.Checkpoints) == 0 {
		return nil, ErrNoCheckpoint
	}

	b := board.New(cfg.ColCount, cfg.RowCount)

	entrypoints := make([]board.Position, 0, len(cfg.Entrypoints))
	for _, pos := range cfg.Entrypoints {
		if !b.InBounds(pos) {
			return nil, &OutOfBoundsError{Position: pos, Kind: board.Entrypoint}
		}
		existing := b.At(pos)
		if err := b.SetEntrypoint(pos); err != nil {
			return nil, &OverlapError{Position: pos, Existing: existing.Kind, Incoming: board.Entrypoint}
		}
		entrypoints = append(entrypoints, pos)
	}

	for _, cp := range cfg.Checkpoints {
		if !b.InBounds(cp.Position) {
			return nil, &OutOfBoundsError{Position: cp.Position, Kind: board.Checkpoint}
		}
		existing := b.At(cp.Position)
		if err := b.SetCheckpoint(cp.Position, cp.Level); err != nil {
			return nil, &OverlapError{Position: cp.Position, Existing: existing.Kind, Incoming: board.Checkpoint}
		}
	}

	for _, pos := range cfg.Walls {
		if !b.InBounds(pos) {
			return nil, &OutOfBoundsError{Position: pos, Kind: board.Wall}
		}
		existing := b.At(pos)
		if err := b.SetWall(pos); err != nil {
			return nil, &OverlapError{Position: pos, Existing: existing.Kind, Incoming: board.Wall}
		}
	}

	return &Maze{board: b, entrypoints: entrypoints, maxSoftWallCount: cfg.MaxSoftWallCount}, nil
}
