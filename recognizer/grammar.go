// Package recognizer is the public face of the recursive-grammar engine:
// a small algebra for building grammars (Factory) over an internal
// possibly-cyclic node graph, and a driver (Recognizer) that decides
// whether an input sequence belongs to a grammar's language by
// repeatedly taking Brzozowski derivatives.
//
// The split mirrors derp::Language<T,Allocator> in the original
// implementation: client code never touches the node graph directly,
// only the algebra below, while internal/lang owns the graph itself.
package recognizer

import (
	"github.com/mjbshaw/derp/internal/lang"
)

// Factory builds Grammar values that all share one Arena, the unit a
// Recognizer later drives derivatives within. Every Grammar produced by
// the same Factory can be combined with Or, Then and friends; mixing
// Grammars from two different Factory values returns an error the same
// way the internal package reports cross-arena node handles.
type Factory[T comparable] struct {
	arena *lang.Arena[T]
}

// NewFactory creates a Factory with its own fresh Arena.
func NewFactory[T comparable]() *Factory[T] {
	return &Factory[T]{arena: lang.NewArena[T]()}
}

func (f *Factory[T]) wrap(n *lang.Node[T]) *Grammar[T] {
	return &Grammar[T]{arena: f.arena, node: n}
}

// Null returns the grammar matching nothing, not even the empty input.
func (f *Factory[T]) Null() *Grammar[T] {
	return f.wrap(lang.Null(f.arena))
}

// Empty returns the grammar matching only the empty input.
func (f *Factory[T]) Empty() *Grammar[T] {
	return f.wrap(lang.Empty(f.arena))
}

// Terminal returns the grammar matching exactly the one-token input <t>.
func (f *Factory[T]) Terminal(t T) *Grammar[T] {
	return f.wrap(lang.Terminal(f.arena, t))
}

// Literal returns the grammar matching exactly the token sequence ts, in
// order.
func (f *Factory[T]) Literal(ts []T) *Grammar[T] {
	return f.wrap(lang.SeqFromTokens(f.arena, ts))
}

// AnyOf returns the grammar matching any single token drawn from ts.
func (f *Factory[T]) AnyOf(ts []T) *Grammar[T] {
	return f.wrap(lang.AnyOf(f.arena, ts))
}

// Placeholder returns an as-yet-undefined grammar suitable for building
// recursive definitions: build the rest of the grammar referencing the
// placeholder, then call Assign once the real definition is ready.
func (f *Factory[T]) Placeholder() *Grammar[T] {
	return f.wrap(lang.Placeholder(f.arena))
}

// Grammar is a handle onto a node in a Factory's arena, combined using
// the methods below into larger grammars. A Grammar value is cheap to
// copy; the arena it references owns the actual graph memory.
type Grammar[T comparable] struct {
	arena *lang.Arena[T]
	node  *lang.Node[T]
}

// Node exposes the underlying internal node, for callers (such as the
// CLI's pretty-printer) that need to pass a
// Grammar's root across the internal/lang API boundary.
func (g *Grammar[T]) Node() *lang.Node[T] {
	return g.node
}

// Or returns the grammar matching the union of g and other's languages.
func (g *Grammar[T]) Or(other *Grammar[T]) (*Grammar[T], error) {
	n, err := lang.Alternate(g.arena, g.node, other.node)
	if err != nil {
		return nil, err
	}
	return &Grammar[T]{arena: g.arena, node: n}, nil
}

// Then returns the grammar matching a string of g's language followed by
// a string of other's language.
func (g *Grammar[T]) Then(other *Grammar[T]) (*Grammar[T], error) {
	n, err := lang.Sequence(g.arena, g.node, other.node)
	if err != nil {
		return nil, err
	}
	return &Grammar[T]{arena: g.arena, node: n}, nil
}

// Star returns the grammar matching zero or more concatenations of g's
// language (Kleene star).
func (g *Grammar[T]) Star() (*Grammar[T], error) {
	n, err := lang.Repetition(g.arena, g.node)
	if err != nil {
		return nil, err
	}
	return &Grammar[T]{arena: g.arena, node: n}, nil
}

// Plus returns the grammar matching one or more concatenations of g's
// language, desugared exactly as g · g* rather than as its own node
// kind.
func (g *Grammar[T]) Plus() (*Grammar[T], error) {
	star, err := g.Star()
	if err != nil {
		return nil, err
	}
	return g.Then(star)
}

// Opt returns the grammar matching g's language or the empty input,
// desugared as ε | g rather than its own node kind.
func (g *Grammar[T]) Opt() (*Grammar[T], error) {
	empty := &Grammar[T]{arena: g.arena, node: lang.Empty(g.arena)}
	return empty.Or(g)
}

// Assign redefines g in place to mean whatever src currently means,
// preserving g's identity so that any grammar already built referencing
// g (typically a Placeholder) sees the new definition from then on. This
// is how a recursive grammar ties its own knot.
func (g *Grammar[T]) Assign(src *Grammar[T]) error {
	return lang.Assign(g.node, src.node)
}

// String renders g using format to stringify individual tokens.
func (g *Grammar[T]) String(format func(T) string) string {
	return lang.String(g.arena, g.node, format)
}

// Describe renders g the same way as String, but substitutes a name for
// any sub-language present in names instead of expanding it inline —
// useful for printing a recursive grammar without unrolling its cycle.
func (g *Grammar[T]) Describe(format func(T) string, names map[*lang.Node[T]]string) string {
	return lang.Describe(g.arena, g.node, format, names)
}
