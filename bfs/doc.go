// Package bfs provides an exhaustive breadth-first search over N-puzzle
// boards, returning the true minimum number of blank moves to the goal.
//
// What:
//
//   - MinMoves explores the move graph outward from a root board in
//     layers of increasing depth, so the first time the goal appears its
//     depth is the exact optimum.
//   - Optional depth limiting and context cancellation.
//
// Why:
//
//   - Oracle: cross-check that the best-first solver's answers are
//     minimal on small boards.
//   - Reachability: an unsolvable permutation is detected when the root's
//     whole component is drained without meeting the goal.
//
// Complexity:
//
//   - Time and memory are O(R×size) where R is the number of reachable
//     boards, exponential in practice; intended for small boards only.
//
// Errors:
//
//   - ErrNilBoard: nil root.
//   - ErrUnreachable: the goal is not in the root's component.
//   - ErrDepthExceeded: the WithMaxDepth cap cut the search before the
//     goal was met.
package bfs
