package board

import (
	"strconv"
	"strings"
)

// Board is a single N-puzzle configuration on an n×n grid.
// Tiles hold a permutation of 0..size−1 in row-major order; 0 is the blank.
// Identity key, Manhattan heuristic and blank position are recomputed
// immediately after every tile mutation and are never stale.
//
// A Board handed out by a running search must be treated as read-only;
// mutate only boards you own (roots being scrambled, clones, manual play).
type Board struct {
	tiles []int
	side  int  // grid side length n, size = n²
	blank int  // index of the blank (value 0)
	key   string
	dist  int  // Manhattan distance to the goal
	depth int  // moves from the search root
	move  Move // blank move that produced this board; MoveNone for roots
}

// New constructs a root Board from tiles, deep-copying the input.
// Returns ErrNotSquare if len(tiles) is not a positive perfect square,
// ErrNotPermutation if tiles are not a permutation of 0..size−1.
// The root has depth 0 and move label MoveNone.
// Complexity: O(size).
func New(tiles []int) (*Board, error) {
	size := len(tiles)
	side := isqrt(size)
	if side < 1 || side*side != size {
		return nil, ErrNotSquare
	}
	// Permutation check: each value 0..size-1 exactly once.
	seen := make([]bool, size)
	for _, v := range tiles {
		if v < 0 || v >= size || seen[v] {
			return nil, ErrNotPermutation
		}
		seen[v] = true
	}

	b := &Board{
		tiles: make([]int, size),
		side:  side,
		move:  MoveNone,
	}
	copy(b.tiles, tiles)
	b.recompute()

	return b, nil
}

// NewSolved returns the goal board for the given side length
// (tiles 0..side²−1 in order). Returns ErrBadSide if side < 1.
// Complexity: O(side²).
func NewSolved(side int) (*Board, error) {
	if side < 1 {
		return nil, ErrBadSide
	}
	tiles := make([]int, side*side)
	for i := range tiles {
		tiles[i] = i
	}

	return New(tiles)
}

// isqrt returns the integer square root of n (floor), or -1 for n < 1.
func isqrt(n int) int {
	if n < 1 {
		return -1
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// recompute refreshes the identity key, the Manhattan distance and the
// cached blank index from the current tiles. Called after every mutation.
//
// The identity key joins decimal tile values with commas ("1,0,2,…"), so
// it stays unambiguous for boards whose tiles need more than one digit.
// Complexity: O(size).
func (b *Board) recompute() {
	var (
		sb   strings.Builder
		dist int
	)
	for i, v := range b.tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
		if v == 0 {
			b.blank = i
			continue // the blank does not contribute to the heuristic
		}
		// Goal position of value v is index v.
		dist += abs(i/b.side-v/b.side) + abs(i%b.side-v%b.side)
	}
	b.key = sb.String()
	b.dist = dist
}

// abs returns |x|.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Side returns the grid side length n.
func (b *Board) Side() int { return b.side }

// Len returns the tile count (side²), including the blank.
func (b *Board) Len() int { return len(b.tiles) }

// Tiles returns a defensive copy of the tile permutation.
func (b *Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)

	return out
}

// Key returns the identity key of the current permutation.
// Keys are equal iff the permutations are equal.
func (b *Board) Key() string { return b.key }

// Heuristic returns the Manhattan distance to the goal: the sum over all
// non-blank tiles of |row−goalRow| + |col−goalCol|. Zero iff IsGoal.
func (b *Board) Heuristic() int { return b.dist }

// Depth returns the number of moves from the search root.
func (b *Board) Depth() int { return b.depth }

// LastMove returns the blank move that produced this board,
// or MoveNone for a root.
func (b *Board) LastMove() Move { return b.move }

// TotalCost returns the A* evaluation f = g + h (Depth + Heuristic).
func (b *Board) TotalCost() int { return b.depth + b.dist }

// BlankIndex returns the index of the blank (value 0).
func (b *Board) BlankIndex() int { return b.blank }

// IsGoal reports whether tiles[i] == i for every index i.
func (b *Board) IsGoal() bool { return b.dist == 0 }

// Clone returns a deep copy of b, preserving depth and move label.
func (b *Board) Clone() *Board {
	c := *b
	c.tiles = make([]int, len(b.tiles))
	copy(c.tiles, b.tiles)

	return &c
}

// ApplyMove swaps the blank with tiles[target] in place and recomputes
// the identity key, heuristic and blank cache. It performs no bounds or
// adjacency validation: the caller must supply a target that is a legal
// row/column neighbor of the blank. Depth and move label are untouched.
// Complexity: O(size).
func (b *Board) ApplyMove(target int) {
	b.tiles[b.blank] = b.tiles[target]
	b.tiles[target] = 0
	b.recompute()
}

// Apply performs one legality-checked blank move in place.
// Returns ErrIllegalMove if the move would leave the grid or cross a row
// boundary. Depth and move label are untouched; Apply is the manual-play
// entry point, not the search expansion.
func (b *Board) Apply(m Move) error {
	target, ok := b.target(m)
	if !ok {
		return ErrIllegalMove
	}
	b.ApplyMove(target)

	return nil
}

// target computes the index the blank would occupy after move m,
// and whether that move stays on the grid.
func (b *Board) target(m Move) (int, bool) {
	switch m {
	case MoveUp:
		t := b.blank - b.side
		return t, t >= 0
	case MoveDown:
		t := b.blank + b.side
		return t, t < len(b.tiles)
	case MoveLeft:
		return b.blank - 1, b.blank%b.side != 0
	case MoveRight:
		return b.blank + 1, b.blank%b.side != b.side-1
	default:
		return 0, false
	}
}

// String renders the permutation as its identity key.
func (b *Board) String() string { return b.key }
