// Package solver drives a best-first (A*) search over N-puzzle boards,
// one bounded unit of work at a time.
//
// What:
//
//   - Solver owns a priority frontier of pending boards, a visited set of
//     identity keys, and an arena of search nodes linked by parent index.
//   - Step() performs exactly one pop-and-expand: pop the cheapest board,
//     mark it visited, finish on goal, otherwise insert its unvisited
//     children. The solver never loops internally; the caller chooses
//     the cadence (tight loop, paced animation, capped iteration count).
//   - Frontier priority is always Board.TotalCost() (f = g + h); with the
//     admissible Manhattan heuristic the first goal popped is optimal.
//   - Path and Replay reconstruct the move-label sequence and the
//     intermediate boards by walking parent indices back to the root.
//
// Why:
//
//   - Caller-paced search: interleave Step() with cancellation checks or
//     progress rendering without threads or channels in the core.
//   - Plain-data reporting: WithOnStep delivers Progress records; the
//     solver never calls into presentation code.
//
// State machine:
//
//	Idle ──Start──▶ Searching ──Step──▶ Found | Exhausted
//	  ▲                                        │
//	  └────────────────Stop────────────────────┘   (Stop is legal anywhere)
//
// Complexity (size = n², V = boards expanded, F = frontier length):
//
//   - Step: one pop O(1), ≤4 expansions O(size), ≤4 ordered insertions
//     O(F) each (sorted-sequence frontier with FIFO ties).
//   - Memory: the arena grows monotonically while searching (any node
//     may be an ancestor of the eventual goal) and is released as a
//     whole by Stop.
//
// Errors:
//
//   - ErrNilBoard: Start called with a nil root.
//   - ErrNotIdle: Start called while a search is active or finished.
//   - ErrNotSearching: Step called while Idle, Found or Exhausted.
//   - ErrNotSolved: Path or Replay called before a goal was found.
//
// An exhausted frontier is a terminal outcome, not an error: Step reports
// it through StatusExhausted and keeps the driver alive.
package solver
