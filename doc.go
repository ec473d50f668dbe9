// Package npuzzle is an in-memory solver core for the sliding-tile
// ("N-puzzle") problem: scramble n²−1 numbered tiles and one blank,
// then find the shortest sequence of blank moves back to the sorted
// configuration.
//
// 🚀 What is npuzzle?
//
//	A small, deterministic library that brings together:
//		• board:  validated puzzle states, Manhattan heuristic, expansion, scramble
//		• solver: best-first (A*) driver with a bounded Step() unit of work
//		• bfs:    exhaustive breadth-first oracle for optimality cross-checks
//
// ✨ Why choose npuzzle?
//
//   - Caller-paced – Step() performs exactly one pop-and-expand; drive it
//     in a tight loop or interleave it with progress reporting
//   - Optimal – Manhattan distance is admissible, so found paths are minimal
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug a progress hook (WithOnStep) for custom reporting
//
// The presentation layer (rendering, input, animation pacing) is an
// external collaborator: it supplies a configuration, drives Step(), and
// receives boards, counters and the final move-label sequence.
//
// Quick ASCII example (3×3, blank shown as ·):
//
//	· 1 2        0 1 2
//	3 4 5   ⇒    3 4 5   solved when tiles read 0..8 row-major
//	6 7 8        6 7 8
//
// Dive into the per-package docs for the full API.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
