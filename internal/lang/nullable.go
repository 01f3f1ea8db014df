package lang

// Nullable reports whether n accepts the empty input. Alternate and
// Sequence nodes may participate in cycles (recursive grammars), so
// their nullability is computed as a Kildall-style least fixed point
// over the possibly-cyclic subgraph: fpFound guards re-entrancy (a node
// revisited mid-iteration returns its current cached value, which starts
// at the conservative bottom, false) while the value monotonically rises
// on a two-element lattice, so it converges in at most one pass per
// reachable node.
//
// step identifies the current derivation pass. A node whose marker is
// stale for step has its fixed-point state (fpFound, nullable) cleared
// before use, so a grammar root reused across multiple Recognize calls
// is re-evaluated from scratch rather than returning a stale answer from
// a previous pass — the reset discipline the spec leaves as an open
// question, resolved here in favor of clearing on every fresh touch.
func Nullable[T comparable](a *Arena[T], step uint64, n *Node[T]) bool {
	switch n.kind {
	case KindLazy:
		return Nullable(a, step, force(a, step, n))
	case KindNull, KindTerminal:
		return false
	case KindEmpty, KindRepetition:
		return true
	case KindAlternate:
		return nullableFixedPoint(a, step, n, func(l, r bool) bool { return l || r })
	case KindSequence:
		return nullableFixedPoint(a, step, n, func(l, r bool) bool { return l && r })
	default:
		return false
	}
}

func nullableFixedPoint[T comparable](a *Arena[T], step uint64, n *Node[T], combine func(left, right bool) bool) bool {
	if n.marker != step {
		n.marker = step
		n.memoize = nil
		n.fpFound = false
	}

	if n.fpFound {
		return n.nullable
	}

	n.fpFound = true
	n.nullable = false

	v := combine(Nullable(a, step, n.left), Nullable(a, step, n.right))
	n.nullable = v

	for {
		next := combine(Nullable(a, step, n.left), Nullable(a, step, n.right))
		if next == v {
			break
		}
		v = next
		n.nullable = v
	}

	return v
}
