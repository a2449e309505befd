package board

// Board is a col_count × row_count grid of tiles, stored as a flat
// buffer indexed y*colCount+x (Design Notes: flat storage over nested
// slices for cache behavior). It is immutable once constructed except
// through the controlled, validated mutation points SetEntrypoint,
// SetCheckpoint, and SetWall — each places one tile into a currently
// Empty cell and refuses to touch an occupied one, so no caller
// (package maze during validation, package runner on a Clone) can
// overwrite a tile that has already been placed.
type Board struct {
	colCount, rowCount int
	tiles              []Tile
}

// New allocates a colCount×rowCount board of Empty tiles.
func New(colCount, rowCount int) *Board {
	tiles := make([]Tile, colCount*rowCount)
	return &Board{colCount: colCount, rowCount: rowCount, tiles: tiles}
}

// ColCount returns the board's width.
func (b *Board) ColCount() int { return b.colCount }

// RowCount returns the board's height.
func (b *Board) RowCount() int { return b.rowCount }

// InBounds reports whether p lies within the board. x is bound by
// ColCount and y by RowCount independently — the two are never
// conflated, even on non-square boards.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.colCount && p.Y >= 0 && p.Y < b.rowCount
}

func (b *Board) index(p Position) int {
	return p.Y*b.colCount + p.X
}

// At returns the tile at p. Callers must ensure p is in bounds; At
// does not itself bounds-check (hot path, called once per BFS edge).
func (b *Board) At(p Position) Tile {
	return b.tiles[b.index(p)]
}

// setTile places t at p unconditionally. Unexported: the sole
// mutation primitive in this package; every exported setter below
// goes through place, which guards it with the bounds/occupancy
// checks that keep a placed tile from ever being overwritten.
func (b *Board) setTile(p Position, t Tile) {
	b.tiles[b.index(p)] = t
}

// place is the shared, validated entry point behind SetEntrypoint,
// SetCheckpoint, and SetWall: it refuses to touch a position outside
// the board or a tile that is not Empty, and otherwise places t.
func (b *Board) place(p Position, t Tile) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.At(p).Kind != Empty {
		return ErrOccupied
	}
	b.setTile(p, t)
	return nil
}

// Clone returns a deep, independent copy of b.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{colCount: b.colCount, rowCount: b.rowCount, tiles: tiles}
}

// SetEntrypoint turns the Empty tile at p into an Entrypoint. Returns
// ErrOutOfBounds if p lies outside the board, or ErrOccupied if the
// tile is not Empty.
func (b *Board) SetEntrypoint(p Position) error {
	return b.place(p, Tile{Kind: Entrypoint})
}

// SetCheckpoint turns the Empty tile at p into a Checkpoint tagged
// with level. Returns ErrOutOfBounds if p lies outside the board, or
// ErrOccupied if the tile is not Empty.
func (b *Board) SetCheckpoint(p Position, level int32) error {
	return b.place(p, Tile{Kind: Checkpoint, Level: level})
}

// SetWall turns the Empty tile at p into a Wall. Returns ErrOutOfBounds
// if p lies outside the board, or ErrOccupied if the tile is not
// Empty (including when it is already a Wall from a previous SetWall
// call on the same clone).
func (b *Board) SetWall(p Position) error {
	return b.place(p, Tile{Kind: Wall})
}
