package bfs

import (
	"github.com/katalvlaran/npuzzle/board"
)

// queueItem pairs a board with its BFS depth from the root.
type queueItem struct {
	b     *board.Board
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	queue   []queueItem
	visited map[string]bool
	capped  bool // true once the depth cap has pruned an expansion
}

// MinMoves returns the minimum number of blank moves from root to the
// goal configuration, found by plain breadth-first search over the move
// graph. Depth is tracked independently of root.Depth(), so any board is
// a valid root.
//
// Returns ErrNilBoard for a nil root, ErrOptionViolation for bad options,
// ErrUnreachable when the root's component drains without meeting the
// goal, ErrDepthExceeded when a WithMaxDepth cap cuts the search, or the
// context's error on cancellation.
func MinMoves(root *board.Board, opts ...Option) (int, error) {
	if root == nil {
		return 0, ErrNilBoard
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	w := &walker{
		opts:    o,
		queue:   []queueItem{{b: root, depth: 0}},
		visited: map[string]bool{root.Key(): true},
	}

	return w.loop()
}

// loop processes the queue until the goal, exhaustion, the depth cap, or
// cancellation.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.b.IsGoal() {
			return item.depth, nil
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			w.capped = true
			continue
		}
		for _, child := range item.b.Neighbors() {
			if w.visited[child.Key()] {
				continue
			}
			w.visited[child.Key()] = true
			w.queue = append(w.queue, queueItem{b: child, depth: nextDepth})
		}
	}

	// Either the cap hid deeper layers, or the component truly drained.
	if w.capped {
		return 0, ErrDepthExceeded
	}

	return 0, ErrUnreachable
}
