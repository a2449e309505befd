package board

// Kind is the closed set of tile kinds a cell can hold. It is a flat
// enum rather than a type hierarchy: behavior on a Kind is external
// pattern matching (switch statements), never method dispatch.
type Kind int

const (
	// Empty is traversable and carries no special role.
	Empty Kind = iota
	// Entrypoint is traversable; a run may start here.
	Entrypoint
	// Wall is non-traversable.
	Wall
	// Checkpoint is traversable and marks a tier-advance tile. The
	// tier is carried in Tile.Level, not in the Kind itself.
	Checkpoint
)

// String renders a Kind for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Entrypoint:
		return "Entrypoint"
	case Wall:
		return "Wall"
	case Checkpoint:
		return "Checkpoint"
	default:
		return "Unknown"
	}
}

// Tile is a single cell's contents. Level is only meaningful when
// Kind == Checkpoint; it is the tier level that entering this tile
// advances a run to.
type Tile struct {
	Kind  Kind
	Level int32
}

// Position is a pair of non-negative grid coordinates. Equality is
// structural, as for any plain Go struct of comparable fields.
type Position struct {
	X, Y int
}

// Neighbors returns the four 4-connected candidate neighbors of p in
// the fixed tie-break order used throughout this module: north, south,
// east, west, where y grows "up" — (x,y+1), (x,y-1), (x+1,y), (x-1,y).
// Callers are responsible for bounds-checking the results; Neighbors
// itself performs no clipping so the order is exact and allocation-free.
func Neighbors(p Position) [4]Position {
	return [4]Position{
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
}
