package board

// Neighbors expands b into its children: one new Board per legal blank
// move, in Up, Down, Left, Right order (at most four). Each child is a
// deep copy with depth = b.depth+1 and its move label set; b itself is
// never mutated.
// Complexity: O(size) per child.
func (b *Board) Neighbors() []*Board {
	out := make([]*Board, 0, len(expandOrder))
	for _, m := range expandOrder {
		target, ok := b.target(m)
		if !ok {
			continue
		}
		child := b.Clone()
		child.depth = b.depth + 1
		child.move = m
		child.ApplyMove(target)
		out = append(out, child)
	}

	return out
}
