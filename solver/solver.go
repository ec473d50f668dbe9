package solver

import "github.com/katalvlaran/npuzzle/board"

// node is one arena slot: a board plus the arena index of its parent.
// Parents are indices rather than pointers so the whole search tree is a
// single dense slice, reclaimed in one operation by Stop.
type node struct {
	b      *board.Board
	parent int // arena index of the parent; noParent for the root
}

// noParent marks the root node's parent index.
const noParent = -1

// Solver owns the frontier, the visited set and the node arena for one
// search at a time. It is not safe for concurrent use: one logical
// writer drives Start/Step/Stop.
type Solver struct {
	opts     Options
	status   Status
	arena    []node
	frontier frontier
	visited  map[string]struct{}
	open     map[string]int // identity key → arena index of its frontier entry
	last     int            // arena index of the most recently popped node
	goal     int            // arena index of the goal node once Found
}

// New constructs an Idle Solver, applying any functional options.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{
		opts:   o,
		status: StatusIdle,
		last:   noParent,
		goal:   noParent,
	}
}

// Start transitions Idle → Searching, seeding the arena with root and the
// frontier with a single entry at root.TotalCost(). The total-cost policy
// applies uniformly to every insertion, the first included.
// Returns ErrNilBoard for a nil root, ErrNotIdle if a previous search has
// not been cleared with Stop.
func (s *Solver) Start(root *board.Board) error {
	if root == nil {
		return ErrNilBoard
	}
	if s.status != StatusIdle {
		return ErrNotIdle
	}

	s.arena = []node{{b: root, parent: noParent}}
	s.frontier = frontier{}
	s.visited = make(map[string]struct{})
	s.open = map[string]int{root.Key(): 0}
	s.last = noParent
	s.goal = noParent
	s.frontier.insert(entry{node: 0, cost: root.TotalCost()})
	s.status = StatusSearching

	return nil
}

// Step performs exactly one pop-and-expand unit of work.
//
//   - Empty frontier: transition to StatusExhausted and return the last
//     popped board with Finished=false (a terminal outcome, not an error).
//   - Goal popped: transition to StatusFound, return it with Finished=true.
//   - Otherwise: mark the popped board visited, insert its unvisited
//     children at their TotalCost(), return it with Finished=false.
//
// The frontier holds at most one entry per identity key: a child
// rediscovered at a strictly lower total cost replaces its open entry,
// so every pop is fresh, each step expands exactly one new key, no key
// is ever expanded twice, and visited+frontier counts never shrink.
// Returns ErrNotSearching unless the solver is actively Searching.
func (s *Solver) Step() (StepResult, error) {
	if s.status != StatusSearching {
		return StepResult{}, ErrNotSearching
	}

	e, ok := s.frontier.popMin()
	if !ok {
		s.status = StatusExhausted
		res := StepResult{Finished: false, Board: s.lastBoard()}
		s.emit(res.Board)

		return res, nil
	}

	b := s.arena[e.node].b
	delete(s.open, b.Key())
	s.visited[b.Key()] = struct{}{}
	s.last = e.node

	if b.IsGoal() {
		s.status = StatusFound
		s.goal = e.node
		res := StepResult{Finished: true, Board: b}
		s.emit(b)

		return res, nil
	}

	for _, child := range b.Neighbors() {
		s.merge(child, e.node)
	}

	res := StepResult{Finished: false, Board: b}
	s.emit(b)

	return res, nil
}

// merge inserts child (generated from arena node parent) into the
// frontier unless its key is already visited, or already open at an
// equal or lower cost. A strictly cheaper rediscovery replaces the open
// entry (the decrease-key move of classic A*).
func (s *Solver) merge(child *board.Board, parent int) {
	key := child.Key()
	if _, seen := s.visited[key]; seen {
		return
	}
	cost := child.TotalCost()
	if prev, inOpen := s.open[key]; inOpen {
		if cost >= s.arena[prev].b.TotalCost() {
			return
		}
		// Strictly better path to an open board: drop the stale entry.
		// The superseded arena node stays allocated but unreferenced.
		s.frontier.remove(prev)
	}
	s.arena = append(s.arena, node{b: child, parent: parent})
	idx := len(s.arena) - 1
	s.open[key] = idx
	s.frontier.insert(entry{node: idx, cost: cost})
}

// Stop discards the frontier, visited set and arena and returns the
// solver to Idle. Legal from any state; cancellation is synchronous and
// immediate, with no partial state left behind.
func (s *Solver) Stop() {
	s.status = StatusIdle
	s.arena = nil
	s.frontier = nil
	s.visited = nil
	s.open = nil
	s.last = noParent
	s.goal = noParent
}

// Status returns the solver's current state-machine position.
func (s *Solver) Status() Status { return s.status }

// Searching reports whether a search is active (Start succeeded and no
// terminal step has occurred).
func (s *Solver) Searching() bool { return s.status == StatusSearching }

// VisitedCount returns the number of identity keys expanded so far.
func (s *Solver) VisitedCount() int { return len(s.visited) }

// FrontierCount returns the number of pending frontier entries.
func (s *Solver) FrontierCount() int { return len(s.frontier) }

// lastBoard returns the most recently popped board, or nil before the
// first pop.
func (s *Solver) lastBoard() *board.Board {
	if s.last == noParent {
		return nil
	}

	return s.arena[s.last].b
}

// emit delivers a Progress record to the OnStep hook, if installed.
func (s *Solver) emit(b *board.Board) {
	if s.opts.OnStep == nil {
		return
	}
	p := Progress{
		Visited:  len(s.visited),
		Frontier: len(s.frontier),
		Status:   s.status,
	}
	if b != nil {
		p.Depth = b.Depth()
		p.Heuristic = b.Heuristic()
		p.TotalCost = b.TotalCost()
	}
	s.opts.OnStep(p)
}
