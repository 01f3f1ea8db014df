package lang

// Derive computes the Brzozowski derivative of n with respect to t: the
// graph recognizing the language of residuals after consuming t.
//
// Per-step bookkeeping: step identifies the current derivation pass. The
// first time Derive touches a node in a step (marker != step), it
// updates marker and clears memoize; a non-nil memoize found during the
// same step means "already computed this step, return it." New nodes
// are always wrapped as Lazy rather than derived immediately — this is
// what lets cyclic grammars terminate: a node's child may eventually
// refer back to the node itself, and eager recursion would not.
func Derive[T comparable](a *Arena[T], t T, step uint64, n *Node[T]) *Node[T] {
	if n.marker != step {
		n.marker = step
		n.memoize = nil
	}

	switch n.kind {
	case KindLazy:
		return Derive(a, t, step, force(a, step, n))
	case KindNull, KindEmpty:
		return a.Null()
	case KindTerminal:
		if n.token == t {
			return a.Empty()
		}
		return a.Null()
	case KindAlternate:
		return deriveAlternate(a, t, step, n)
	case KindSequence:
		return deriveSequence(a, t, step, n)
	case KindRepetition:
		return deriveRepetition(a, t, step, n)
	default:
		return a.Null()
	}
}

// force is a no-op on non-Lazy nodes. On a Lazy(pattern, t) it
// recursively forces pattern, computes the derivative, and overwrites
// the Lazy node in place with the result's contents so that any other
// part of the graph already pointing at it sees the forced content from
// then on. The returned pointer is the canonical (possibly more compact)
// result, which may be a different node than the one passed in.
func force[T comparable](a *Arena[T], step uint64, n *Node[T]) *Node[T] {
	if n.kind != KindLazy {
		return n
	}

	forcedPattern := force(a, step, n.pattern)
	optimal := Derive(a, n.token, step, forcedPattern)
	n.overwrite(optimal)
	return optimal
}

// deriveAlternate implements ∂ₜ(L | R) = ∂ₜL | ∂ₜR. The freshly
// allocated Alternate node is memoized before its Lazy children are
// forced, seeding the cycle: if forcing recursively returns to this
// node, it reuses the already-allocated shell instead of looping.
func deriveAlternate[T comparable](a *Arena[T], t T, step uint64, n *Node[T]) *Node[T] {
	if n.memoize != nil {
		return n.memoize
	}

	alt := a.Allocate()
	alt.kind = KindAlternate
	alt.marker = step
	alt.memoize = nil
	alt.fpFound = false
	alt.left = lazy(a, step, n.left, t)
	alt.right = lazy(a, step, n.right, t)

	n.memoize = alt

	alt.left = force(a, step, alt.left)
	alt.right = force(a, step, alt.right)

	result := compact(a, alt)
	n.memoize = result
	return result
}

// deriveSequence implements:
//
//	∂ₜ(L · R) = (∂ₜL · R)          if L is not nullable
//	          = (∂ₜR) | (∂ₜL · R)  if L is nullable
//
// R is referenced as-is (not derived) when it contributes only via the
// unchanged seq.right slot, so it must be marked reachable for this step
// even though it is never forced.
func deriveSequence[T comparable](a *Arena[T], t T, step uint64, n *Node[T]) *Node[T] {
	if n.memoize != nil {
		return n.memoize
	}

	seq := a.Allocate()
	seq.kind = KindSequence
	seq.marker = step
	seq.memoize = nil
	seq.fpFound = false
	seq.left = lazy(a, step, n.left, t)
	seq.right = n.right
	mark(step, n.right)

	if Nullable(a, step, n.left) {
		alt := a.Allocate()
		alt.kind = KindAlternate
		alt.marker = step
		alt.memoize = nil
		alt.fpFound = false
		alt.left = lazy(a, step, n.right, t)
		alt.right = seq

		n.memoize = alt

		seq.left = force(a, step, seq.left)
		alt.left = force(a, step, alt.left)

		alt.right = compact(a, seq)

		result := compact(a, alt)
		n.memoize = result
		return result
	}

	n.memoize = seq
	seq.left = force(a, step, seq.left)

	result := compact(a, seq)
	n.memoize = result
	return result
}

// deriveRepetition implements ∂ₜ(P*) = ∂ₜP · P*. The back-edge to the
// unchanged repetition node needs no explicit mark call: Derive already
// touched n (the repetition itself) at entry, before this function ran.
func deriveRepetition[T comparable](a *Arena[T], t T, step uint64, n *Node[T]) *Node[T] {
	if n.memoize != nil {
		return n.memoize
	}

	seq := a.Allocate()
	seq.kind = KindSequence
	seq.marker = step
	seq.memoize = nil
	seq.fpFound = false
	seq.left = lazy(a, step, n.pattern, t)
	seq.right = n

	n.memoize = seq

	seq.left = force(a, step, seq.left)

	result := compact(a, seq)
	n.memoize = result
	return result
}
