// Package board models a rectangular grid of tiles: coordinates, the
// closed set of tile kinds a cell can hold, and the board itself as an
// immutable-once-built flat buffer.
//
// Boards are built once (by package maze) and never mutated in place
// except through Clone, which callers use to derive a working copy
// before punching soft walls into it.
package board
