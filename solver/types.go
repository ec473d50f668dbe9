// Package solver defines configuration options, result records and
// sentinel errors for the best-first N-puzzle driver.
package solver

import (
	"errors"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for solver usage.
var (
	// ErrNilBoard is returned when Start receives a nil root board.
	ErrNilBoard = errors.New("solver: root board is nil")

	// ErrNotIdle is returned when Start is called on a solver that is not
	// Idle; call Stop first to discard the previous search.
	ErrNotIdle = errors.New("solver: search already started; call Stop first")

	// ErrNotSearching is returned when Step is called while the solver is
	// Idle, Found or Exhausted (a caller usage error, not a search outcome).
	ErrNotSearching = errors.New("solver: no active search; call Start first")

	// ErrNotSolved is returned when Path or Replay is called before the
	// search has reached StatusFound.
	ErrNotSolved = errors.New("solver: no goal found yet")
)

// Status is the solver's state-machine position.
type Status uint8

const (
	// StatusIdle: no search in progress; Start is legal.
	StatusIdle Status = iota
	// StatusSearching: Start succeeded and no terminal step has occurred.
	StatusSearching
	// StatusFound: a goal board was popped; Path and Replay are legal.
	StatusFound
	// StatusExhausted: the frontier drained without reaching the goal;
	// the root's component does not contain the goal (terminal, non-fatal).
	StatusExhausted
)

// statusNames maps each Status to its display label.
var statusNames = [...]string{
	StatusIdle:      "Idle",
	StatusSearching: "Searching",
	StatusFound:     "Found",
	StatusExhausted: "Exhausted",
}

// String returns the human-readable label of st.
func (st Status) String() string {
	if int(st) < len(statusNames) {
		return statusNames[st]
	}

	return "Unknown"
}

// StepResult is the outcome of one Step call.
// Board is the board popped during the step; on StatusExhausted it is the
// board popped by the previous step (the search cannot progress past it).
type StepResult struct {
	// Finished is true exactly when the step popped the goal board.
	Finished bool
	// Board is the current board, for display.
	Board *board.Board
}

// Progress is the plain-data record delivered to the OnStep hook after
// every Step call, for progress text and display.
type Progress struct {
	Visited   int    // identity keys expanded so far
	Frontier  int    // pending frontier entries
	Depth     int    // depth of the current board
	Heuristic int    // Manhattan distance of the current board
	TotalCost int    // f = Depth + Heuristic of the current board
	Status    Status // solver status after the step
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing solver behavior.
type Options struct {
	// OnStep, if non-nil, is called after every Step with a Progress
	// record. It must not call back into the solver.
	OnStep func(Progress)
}

// DefaultOptions returns Options with no hook installed.
func DefaultOptions() Options {
	return Options{OnStep: nil}
}

// WithOnStep registers a progress hook invoked after every Step.
func WithOnStep(fn func(Progress)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
