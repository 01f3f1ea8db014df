package lang

// Describe renders the grammar rooted at n as ∅, ε, 'c', (a | b), a b,
// (p)*, guarding against cycles by printing "∞" on any node revisited
// during this call. names, if non-nil, supplies display names for
// sub-languages (e.g. a recursive grammar's own name) instead of
// expanding them inline; the root itself is always expanded even if it
// appears in names.
//
// Describe borrows the same marker field derive and Nullable use for
// their own per-step bookkeeping, so it claims a fresh step from a
// before walking the graph; it is safe to call between, but not during,
// a derivation step.
func Describe[T comparable](a *Arena[T], n *Node[T], format func(T) string, names map[*Node[T]]string) string {
	step := a.NextStep()
	return describe(n, step, format, names, true)
}

// String renders n the same way as Describe, without name substitution.
func String[T comparable](a *Arena[T], n *Node[T], format func(T) string) string {
	return Describe(a, n, format, nil)
}

func describe[T comparable](n *Node[T], step uint64, format func(T) string, names map[*Node[T]]string, skipLookup bool) string {
	if !skipLookup && names != nil {
		if name, ok := names[n]; ok {
			return name
		}
	}

	if n.marker == step {
		switch n.kind {
		case KindNull, KindEmpty, KindTerminal:
			// These can never participate in a cycle; fall through and
			// print them normally.
		default:
			return "∞" // infinity, cycle guard
		}
	}
	n.marker = step

	switch n.kind {
	case KindLazy:
		return "D_" + format(n.token) + "(" + describe(n.pattern, step, format, names, false) + ")"
	case KindNull:
		return "∅"
	case KindEmpty:
		return "ε"
	case KindTerminal:
		return "'" + format(n.token) + "'"
	case KindAlternate:
		return "(" + describe(n.left, step, format, names, false) + " | " + describe(n.right, step, format, names, false) + ")"
	case KindSequence:
		return describe(n.left, step, format, names, false) + " " + describe(n.right, step, format, names, false)
	case KindRepetition:
		return "(" + describe(n.pattern, step, format, names, false) + ")*"
	default:
		return ""
	}
}
