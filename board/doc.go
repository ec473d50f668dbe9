// Package board models a single N-puzzle configuration and its legal
// blank moves.
//
// What:
//
//   - Board wraps a validated permutation of 0..size−1 (0 is the blank)
//     on an n×n grid, with n = √size.
//   - Caches the blank position, a unique identity key, the Manhattan
//     heuristic, the depth from the search root, and the move label that
//     produced the configuration.
//   - Neighbors expands a board into at most four children, one per legal
//     blank move, in Up, Down, Left, Right order.
//   - Scramble performs a seeded random walk of legal moves, never
//     undoing the previous move, to produce a solvable starting board.
//
// Why:
//
//   - Search cores: Board is the state type consumed by solver and bfs.
//   - Manual play: Apply performs one legality-checked blank move.
//   - Reproducible setups: Scramble is deterministic per seed.
//
// Complexity (size = n²):
//
//   - New / Clone / ApplyMove / Neighbors: O(size) time each.
//   - BlankIndex / TotalCost / IsGoal accessors: O(1) (IsGoal is O(1)
//     via the cached heuristic).
//   - Scramble: O(steps×size).
//
// Errors:
//
//   - ErrNotSquare: tile count is not a perfect square.
//   - ErrNotPermutation: tiles are not a permutation of 0..size−1.
//   - ErrBadSide: requested side length is below 1.
//   - ErrIllegalMove: Apply would leave the grid or cross a row boundary.
//   - ErrBadScrambleSteps: negative scramble step count.
package board
