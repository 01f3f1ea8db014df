package lang

import (
	"sync/atomic"

	verr "github.com/mjbshaw/derp/error"
)

var arenaSeq uint64

// Arena is a region-based allocator for Node[T]. It owns every node it
// ever allocates: dead nodes are recycled into a free list rather than
// released to the garbage collector, and a caller-supplied step number
// (see IsDead) drives a mark-sweep pass rather than a reference count.
//
// An Arena is not safe for concurrent use from multiple goroutines; a
// grammar graph and its Arena are expected to be driven from a single
// logical thread, exactly as the spec's Concurrency & Resource Model
// describes.
type Arena[T comparable] struct {
	id    uint64
	alive []*Node[T]
	dead  []*Node[T]
	step  uint64

	null  *Node[T]
	empty *Node[T]
}

// NewArena creates an empty arena with its two distinguished singletons,
// NullLanguage and EmptyLanguage, already allocated.
func NewArena[T comparable]() *Arena[T] {
	a := &Arena[T]{id: atomic.AddUint64(&arenaSeq, 1)}
	a.null = &Node[T]{kind: KindNull, owner: a}
	a.empty = &Node[T]{kind: KindEmpty, owner: a}
	return a
}

// Null returns this arena's singleton ∅ node. It is never allocated from
// or returned to the free list.
func (a *Arena[T]) Null() *Node[T] {
	return a.null
}

// Empty returns this arena's singleton {ε} node.
func (a *Arena[T]) Empty() *Node[T] {
	return a.empty
}

// Step returns the arena's current step counter, as last advanced by
// NextStep.
func (a *Arena[T]) Step() uint64 {
	return a.step
}

// NextStep advances and returns the step counter. Describe calls this
// to claim a fresh marker value for its walk; the recognizer driver does
// not, and keeps its own local step counter per call instead. A uint64
// counter will not wrap in practice.
func (a *Arena[T]) NextStep() uint64 {
	a.step++
	return a.step
}

// Allocate returns a recycled node if the free list is non-empty,
// otherwise a freshly constructed one. The returned node's contents are
// indeterminate; callers must initialize every field relevant to the
// kind they are about to assign.
func (a *Arena[T]) Allocate() *Node[T] {
	var n *Node[T]
	if len(a.dead) > 0 {
		n = a.dead[len(a.dead)-1]
		a.dead = a.dead[:len(a.dead)-1]
		n.reset(a)
	} else {
		n = &Node[T]{owner: a}
	}
	a.alive = append(a.alive, n)
	return n
}

// Collect moves every currently-live node for which pred holds from the
// alive set to the dead set. After Collect returns, no live node
// satisfies pred.
func (a *Arena[T]) Collect(pred func(*Node[T]) bool) {
	kept := a.alive[:0]
	for _, n := range a.alive {
		if pred(n) {
			a.dead = append(a.dead, n)
		} else {
			kept = append(kept, n)
		}
	}
	a.alive = kept
}

// CollectAll moves every currently-live node to the dead set, used after
// a final nullability check to release the derivative frontier.
func (a *Arena[T]) CollectAll() {
	a.dead = append(a.dead, a.alive...)
	a.alive = a.alive[:0]
}

// Steal transfers every currently-alive node out of the arena's alive
// set and returns it, clearing the arena's alive set. Used to hold
// "invincible" nodes — roots that must survive collection regardless of
// marker — outside the arena while a fresh derivation proceeds.
func (a *Arena[T]) Steal() []*Node[T] {
	stolen := a.alive
	a.alive = nil
	return stolen
}

// Give transfers ownership of nodes back into the arena's alive set.
func (a *Arena[T]) Give(nodes []*Node[T]) {
	a.alive = append(a.alive, nodes...)
}

// Shrink releases every currently-dead node, truly freeing them for
// garbage collection by Go's runtime.
func (a *Arena[T]) Shrink() {
	a.dead = nil
}

// checkOwner checks, without panicking, that n was allocated by a,
// returning a *verr.ArenaMismatchError if not. Singletons get no special
// case: every arena owns its own distinguished ∅/{ε} pair, so another
// arena's singleton is reported as a mismatch like any other node.
func (a *Arena[T]) checkOwner(n *Node[T]) error {
	if n == nil || n.owner == a {
		return nil
	}
	return &verr.ArenaMismatchError{Kind: n.kind.String()}
}

// Live reports the number of currently-alive nodes, for tests and
// diagnostics (spec's "arena reuse" property).
func (a *Arena[T]) Live() int {
	return len(a.alive)
}

// Dead reports the number of currently-recyclable nodes.
func (a *Arena[T]) Dead() int {
	return len(a.dead)
}
