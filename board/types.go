// Package board defines core types and sentinel errors for N-puzzle
// configurations.
package board

import "errors"

// Sentinel errors for board construction and mutation.
var (
	// ErrNotSquare indicates the tile count is not a perfect square.
	ErrNotSquare = errors.New("board: tile count must be a perfect square")

	// ErrNotPermutation indicates tiles are not a permutation of 0..size-1.
	ErrNotPermutation = errors.New("board: tiles must be a permutation of 0..size-1")

	// ErrBadSide indicates a requested side length below 1.
	ErrBadSide = errors.New("board: side length must be at least 1")

	// ErrIllegalMove indicates a blank move that would leave the grid.
	ErrIllegalMove = errors.New("board: move would leave the grid")

	// ErrBadScrambleSteps indicates a negative scramble step count.
	ErrBadScrambleSteps = errors.New("board: scramble steps must be non-negative")
)

// Move labels the blank move that transformed a parent board into a child.
// Directions describe where the blank travels: MoveUp swaps the blank with
// the tile directly above it, and so on.
type Move uint8

const (
	// MoveNone marks a root board: no move produced it.
	MoveNone Move = iota
	// MoveUp moves the blank one row up.
	MoveUp
	// MoveDown moves the blank one row down.
	MoveDown
	// MoveLeft moves the blank one column left.
	MoveLeft
	// MoveRight moves the blank one column right.
	MoveRight
)

// moveNames maps each Move to its display label.
var moveNames = [...]string{
	MoveNone:  "None",
	MoveUp:    "Up",
	MoveDown:  "Down",
	MoveLeft:  "Left",
	MoveRight: "Right",
}

// String returns the human-readable label of m ("Up", "Left", ...).
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}

	return "Unknown"
}

// opposite maps each Move to the move that undoes it.
// Used by Scramble to reject immediate reversals.
var opposite = [...]Move{
	MoveNone:  MoveNone,
	MoveUp:    MoveDown,
	MoveDown:  MoveUp,
	MoveLeft:  MoveRight,
	MoveRight: MoveLeft,
}

// expandOrder fixes the child generation order for Neighbors and Scramble.
var expandOrder = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}
