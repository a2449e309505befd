// Package maze validates a user-supplied configuration into an
// immutable Maze handle: a board plus its ordered entrypoints and
// soft-wall cap.
//
// Validation is pure and order-sensitive: entrypoints are placed
// before checkpoints, which are placed before walls, so that an
// overlap at a given position always reports the earlier-placed kind
// as "existing" and the later one as "incoming". Callers must not
// reorder a Config's fields and expect the same error on overlap.
package maze
