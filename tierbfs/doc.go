// Package tierbfs implements the tiered breadth-first search that
// powers a single run attempt: given a board, an ordered sequence of
// checkpoint tier levels, and a starting position, it finds the
// shortest walk that touches a checkpoint of each tier level in order,
// then reconstructs a deterministic witness path for that walk.
//
// What:
//
//   - Solve runs a FIFO BFS over an augmented state space of (position,
//     tier index) pairs and returns a *Run holding the distance table
//     and the terminal distance/position, or nil if no walk completes
//     every tier.
//   - Run.WitnessPath walks the distance table backward from the exit
//     position, descending the steepest gradient at each tier boundary,
//     and returns the forward witness path realizing Run.Score().
//   - DeriveTiers scans a board for Checkpoint tiles and returns their
//     distinct levels in ascending order.
//
// Why:
//
//   - A cell may be visited once per tier, so the same cell can
//     legitimately appear more than once in a witness path — a plain
//     visited set would forbid the revisits a correctly ordered tour
//     requires.
//   - Every transition costs exactly one step, so a single FIFO queue
//     over this augmented state space produces the minimum step count;
//     no priority queue or Dijkstra relaxation is needed.
//
// Complexity (n = colCount×rowCount, k = number of tiers):
//
//   - Solve: O(n·k) time and memory — each (cell, tier) pair is
//     enqueued at most once.
//   - WitnessPath: O(D) where D is the reported score, bounded by a
//     D+2 step budget.
//
// Errors:
//
//   - WitnessPath panics with *ReconstructionError if the backward walk
//     finds no neighbor with a recorded distance at the current tier
//     level, or fails to reach an entrypoint within its step budget — a fatal
//     invariant violation in the distance table, never a condition
//     produced by a well-formed Solve result.
package tierbfs
