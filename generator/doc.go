// Package generator produces random, guaranteed-solvable maze
// configurations for the Vanilla and Waterfall variants.
//
// What:
//
//   - Vanilla generates a 20x10 maze with randomly placed entrypoints
//     on the left wall and exits on the right wall.
//   - Waterfall generates a 10x15 maze with a full top row of
//     entrypoints and a full bottom row of exits.
//   - Both place a random count of interior checkpoints, assign
//     ascending tier levels ending with the exits as the terminal
//     tier, and then propose random hard walls one at a time, keeping
//     only the ones that leave the maze solvable.
//
// Why:
//
//   - Hand-authored mazes don't scale for fuzz/property testing or
//     demo content; a generator that only has to guarantee
//     solvability (not "interestingness") is cheap to build and cheap
//     to verify.
//
// Complexity (n = colCount×rowCount, k = tier count, w = candidate wall count):
//
//   - Each candidate wall triggers one Runner.Run call, so the
//     accept/reject loop costs O(w·n·k) in the worst case.
//
// Errors:
//
//   - ErrInternal wraps any error surfaced by the maze or runner
//     packages while generating a configuration — construction or a
//     solvability check failed for a reason that should never happen
//     given how a generator builds its own configs.
package generator
