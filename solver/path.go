package solver

import (
	"strings"

	"github.com/katalvlaran/npuzzle/board"
)

// Path reconstructs the move-label sequence from the root to the goal by
// walking parent indices goal→root and reversing. The root contributes
// no label, so len(path) == goal.Depth(); an already-solved root yields
// an empty sequence. Only legal once the search is Found (ErrNotSolved).
// Complexity: O(depth).
func (s *Solver) Path() ([]board.Move, error) {
	if s.status != StatusFound {
		return nil, ErrNotSolved
	}

	moves := make([]board.Move, 0, s.arena[s.goal].b.Depth())
	for i := s.goal; s.arena[i].parent != noParent; i = s.arena[i].parent {
		moves = append(moves, s.arena[i].b.LastMove())
	}
	reverseMoves(moves)

	return moves, nil
}

// Replay returns the intermediate boards of the solution for stepwise
// animation. Contract: boards are in root→goal order, the root itself is
// excluded, and len(replay) == goal.Depth() (the last element is the goal
// board). Only legal once the search is Found (ErrNotSolved).
// Complexity: O(depth).
func (s *Solver) Replay() ([]*board.Board, error) {
	if s.status != StatusFound {
		return nil, ErrNotSolved
	}

	boards := make([]*board.Board, 0, s.arena[s.goal].b.Depth())
	for i := s.goal; s.arena[i].parent != noParent; i = s.arena[i].parent {
		boards = append(boards, s.arena[i].b)
	}
	reverseBoards(boards)

	return boards, nil
}

// FormatMoves renders a move sequence as a comma-joined textual list
// ("Left, Up, Up"), the human-readable display form. Empty input yields
// the empty string.
func FormatMoves(moves []board.Move) string {
	if len(moves) == 0 {
		return ""
	}
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = m.String()
	}

	return strings.Join(labels, ", ")
}

// reverseMoves flips a move slice in place (collected goal→root, wanted
// root→goal).
func reverseMoves(a []board.Move) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// reverseBoards flips a board slice in place.
func reverseBoards(a []*board.Board) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
