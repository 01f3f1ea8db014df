package lang

import verr "github.com/mjbshaw/derp/error"

// Null returns the arena's distinguished ∅ node.
func Null[T comparable](a *Arena[T]) *Node[T] {
	return a.Null()
}

// Empty returns the arena's distinguished {ε} node.
func Empty[T comparable](a *Arena[T]) *Node[T] {
	return a.Empty()
}

// Terminal builds a node matching exactly the one-token sequence <t>.
func Terminal[T comparable](a *Arena[T], t T) *Node[T] {
	n := a.Allocate()
	n.kind = KindTerminal
	n.token = t
	return n
}

// Placeholder allocates an uninitialized node suitable as the left-hand
// side of a later Assign, the mechanism by which cyclic (recursive)
// grammars are built: allocate a placeholder, build the rest of the
// grammar referencing it, then Assign the real definition into it.
func Placeholder[T comparable](a *Arena[T]) *Node[T] {
	n := a.Allocate()
	n.kind = KindNull
	return n
}

// Assign copies src's contents into dst in place, preserving dst's
// identity so that any other node already holding a back-reference to
// dst observes the new definition. This is how recursive grammars tie
// their knot: dst is typically a Placeholder that other nodes already
// point to.
func Assign[T comparable](dst, src *Node[T]) error {
	if err := dst.owner.checkOwner(src); err != nil {
		return err
	}
	dst.overwrite(src)
	return nil
}

// Alternate builds a node matching strings in left ∪ right.
func Alternate[T comparable](a *Arena[T], left, right *Node[T]) (*Node[T], error) {
	if left == nil {
		return nil, &verr.MalformedNodeError{Kind: "alternate", Field: "left"}
	}
	if right == nil {
		return nil, &verr.MalformedNodeError{Kind: "alternate", Field: "right"}
	}
	if err := a.checkOwner(left); err != nil {
		return nil, err
	}
	if err := a.checkOwner(right); err != nil {
		return nil, err
	}
	n := a.Allocate()
	n.kind = KindAlternate
	n.left = left
	n.right = right
	return n, nil
}

// Sequence builds a node matching concatenations of a string in left
// followed by a string in right.
func Sequence[T comparable](a *Arena[T], left, right *Node[T]) (*Node[T], error) {
	if left == nil {
		return nil, &verr.MalformedNodeError{Kind: "sequence", Field: "left"}
	}
	if right == nil {
		return nil, &verr.MalformedNodeError{Kind: "sequence", Field: "right"}
	}
	if err := a.checkOwner(left); err != nil {
		return nil, err
	}
	if err := a.checkOwner(right); err != nil {
		return nil, err
	}
	n := a.Allocate()
	n.kind = KindSequence
	n.left = left
	n.right = right
	return n, nil
}

// Repetition builds a node matching zero or more concatenations of
// strings in pattern (Kleene star).
func Repetition[T comparable](a *Arena[T], pattern *Node[T]) (*Node[T], error) {
	if pattern == nil {
		return nil, &verr.MalformedNodeError{Kind: "repetition", Field: "pattern"}
	}
	if err := a.checkOwner(pattern); err != nil {
		return nil, err
	}
	n := a.Allocate()
	n.kind = KindRepetition
	n.pattern = pattern
	return n, nil
}

// lazy builds an unforced promise for the derivative of pattern with
// respect to t, at the given step. Internal: used only by derive.
func lazy[T comparable](a *Arena[T], step uint64, pattern *Node[T], t T) *Node[T] {
	n := a.Allocate()
	n.kind = KindLazy
	n.pattern = pattern
	n.token = t
	n.marker = step
	return n
}

// SeqFromTokens builds a right-nested Sequence chain matching exactly
// the token sequence ts, or EmptyLang if ts is empty. Because a
// non-empty literal chain can never accept the empty input, the
// least-fixed-point nullability flags are pre-seeded false on every node
// in the chain, the same optimization the original implementation's
// sequence(gc, str) helper applies, skipping a wasted fixed-point pass
// over string literals.
func SeqFromTokens[T comparable](a *Arena[T], ts []T) *Node[T] {
	if len(ts) == 0 {
		return a.Empty()
	}

	n := Terminal(a, ts[len(ts)-1])
	for i := len(ts) - 2; i >= 0; i-- {
		head := Terminal(a, ts[i])
		seq, err := Sequence(a, head, n)
		if err != nil {
			// head and n are always freshly allocated from a, so this
			// cannot fail.
			panic(err)
		}
		seq.fpFound = true
		seq.nullable = false
		n = seq
	}
	return n
}

// AnyOf builds a right-nested Alternate chain over terminals for each
// token in ts, or EmptyLang if ts is empty. As with SeqFromTokens, the
// chain's nullability is known not-nullable up front and is pre-seeded
// to avoid a redundant fixed-point pass.
func AnyOf[T comparable](a *Arena[T], ts []T) *Node[T] {
	if len(ts) == 0 {
		return a.Empty()
	}

	n := Terminal(a, ts[len(ts)-1])
	for i := len(ts) - 2; i >= 0; i-- {
		alt, err := Alternate(a, Terminal(a, ts[i]), n)
		if err != nil {
			panic(err)
		}
		alt.fpFound = true
		alt.nullable = false
		n = alt
	}
	return n
}
