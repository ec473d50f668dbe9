package solver

import "sort"

// entry pairs an arena node index with the priority it was inserted at.
// The priority is the board's TotalCost() at insertion time. A board
// rediscovered at a strictly lower cost replaces its open entry, so the
// frontier never holds two entries for one identity key.
type entry struct {
	node int // arena index of the board
	cost int // f = g + h at insertion
}

// frontier is a sequence of entries kept sorted ascending by cost at all
// times. Equal-cost entries keep insertion order (FIFO ties): a new entry
// is placed after existing entries of the same cost.
type frontier []entry

// insert places e before the first entry whose cost strictly exceeds
// e.cost, or at the end if none does.
// Complexity: O(log F) to locate, O(F) to shift.
func (f *frontier) insert(e entry) {
	i := sort.Search(len(*f), func(i int) bool { return (*f)[i].cost > e.cost })
	*f = append(*f, entry{})
	copy((*f)[i+1:], (*f)[i:])
	(*f)[i] = e
}

// popMin removes and returns the lowest-cost entry (index 0).
// The second return is false when the frontier is empty.
// Complexity: O(F) (front removal from a slice).
func (f *frontier) popMin() (entry, bool) {
	if len(*f) == 0 {
		return entry{}, false
	}
	e := (*f)[0]
	*f = (*f)[1:]

	return e, true
}

// remove drops the entry referencing the given arena node, preserving
// order. No-op if the node has no entry.
// Complexity: O(F).
func (f *frontier) remove(node int) {
	for i, e := range *f {
		if e.node == node {
			*f = append((*f)[:i], (*f)[i+1:]...)
			return
		}
	}
}
