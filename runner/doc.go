// Package runner evaluates a single soft-wall placement against a
// Maze: it clones the maze's board, overlays the soft walls, and
// invokes the tiered BFS engine once per entrypoint, keeping the
// lowest-scoring successful run. An earlier entrypoint wins any tie —
// a later entrypoint with an equal score never displaces the
// incumbent.
package runner
