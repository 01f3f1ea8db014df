package lang

// PrimeInvincible resets the per-step bookkeeping (marker, memoize,
// fpFound, nullable) on a set of nodes to a baseline value, without
// touching anything they point to. It is meant for nodes a caller is
// about to reuse across many independent derivation runs that each start
// their own step counter at zero (see the recognizer package): without
// this reset, a node's marker left over from a previous run's last step
// could coincidentally equal an early step number of the next run and be
// mistaken for "already visited this step," and a stale fpFound/nullable
// pair could be returned without ever re-deriving, which matters for the
// empty-input case where Nullable is queried on an invincible node
// directly, with no intervening Derive call to force a reset.
func PrimeInvincible[T comparable](nodes []*Node[T], baseline uint64) {
	for _, n := range nodes {
		n.marker = baseline
		n.memoize = nil
		n.fpFound = false
		n.nullable = false
	}
}

// IsDead returns a predicate for Arena.Collect that reports whether a
// node was not touched during step — i.e. it did not survive the most
// recent derivative.
func IsDead[T comparable](step uint64) func(*Node[T]) bool {
	return func(n *Node[T]) bool {
		return n.marker != step
	}
}
