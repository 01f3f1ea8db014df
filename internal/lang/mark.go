package lang

// mark walks the graph rooted at n, setting marker to step on every
// previously-unvisited node and clearing its memoize slot. It is used to
// flag a sub-node that a new derivative references as-is (for example,
// the untouched right-hand side of a Sequence) as reachable for the
// current step, distinguishing it from abandoned nodes the arena will
// reclaim.
func mark[T comparable](step uint64, n *Node[T]) {
	if n == nil || n.marker == step {
		return
	}

	n.marker = step
	n.memoize = nil

	switch n.kind {
	case KindLazy, KindRepetition:
		mark(step, n.pattern)
	case KindAlternate, KindSequence:
		mark(step, n.left)
		mark(step, n.right)
	}
}
