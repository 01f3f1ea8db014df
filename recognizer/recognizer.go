package recognizer

import "github.com/mjbshaw/derp/internal/lang"

// Recognizer decides membership of input sequences in a single Grammar's
// language by repeated Brzozowski derivation, one token at a time.
//
// A Recognizer is built around one Grammar and may be driven with
// Recognize as many times as the caller likes: each call starts its own
// local step counter at zero, so the arena's derivative garbage from one
// call never lingers into the next, and only the grammar's own
// construction-time nodes (stolen as "invincible" for the call's
// duration) survive from one call to the next.
type Recognizer[T comparable] struct {
	grammar *Grammar[T]
}

// New builds a Recognizer driving g.
func New[T comparable](g *Grammar[T]) *Recognizer[T] {
	return &Recognizer[T]{grammar: g}
}

// Recognize reports whether input belongs to the recognizer's grammar's
// language.
//
// The driver: stash every node the grammar's construction left alive
// (its static definition) outside the arena's collectible set so a fresh
// derivation can't reclaim it; walk input left to right, deriving the
// current root with respect to each token and sweeping away whatever
// didn't survive that step; query nullability of the final root; sweep
// the whole remaining frontier; and finally give the static definition
// back to the arena so it, and any nodes it still shares with the
// frontier via back-references, are ready for the next call.
func (r *Recognizer[T]) Recognize(input []T) bool {
	a := r.grammar.arena
	root := r.grammar.node

	invincible := a.Steal()
	lang.PrimeInvincible(invincible, 0)

	var step uint64
	for _, t := range input {
		step++
		root = lang.Derive(a, t, step, root)
		a.Collect(lang.IsDead[T](step))
	}

	matched := lang.Nullable(a, step, root)
	a.CollectAll()
	a.Give(invincible)

	return matched
}
