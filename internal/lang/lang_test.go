package lang

import "testing"

// fooBarStar builds ("foo" | "bar")* directly over the low-level node
// constructors, the same grammar the recognizer package's own tests
// exercise through the public API.
func fooBarStar(t *testing.T, a *Arena[byte]) *Node[byte] {
	t.Helper()
	foo := SeqFromTokens(a, []byte("foo"))
	bar := SeqFromTokens(a, []byte("bar"))
	alt, err := Alternate(a, foo, bar)
	if err != nil {
		t.Fatalf("Alternate: %v", err)
	}
	rep, err := Repetition(a, alt)
	if err != nil {
		t.Fatalf("Repetition: %v", err)
	}
	return rep
}

// recognize drives a full recognizer pass over root in a, safe to call
// more than once against the same arena and root: it stashes whatever
// was alive at call time, derives one step per input token, queries
// nullability of the resulting frontier, then sweeps and restores the
// stash — mirroring the protocol recognizer.Recognizer.Recognize follows
// so that per-call step counters starting back at zero can't alias stale
// marker state left over from a previous call.
func recognize(a *Arena[byte], root *Node[byte], input []byte) bool {
	invincible := a.Steal()
	PrimeInvincible(invincible, 0)

	var step uint64
	n := root
	for _, t := range input {
		step++
		n = Derive(a, t, step, n)
		a.Collect(IsDead[byte](step))
	}
	matched := Nullable(a, step, n)
	a.CollectAll()
	a.Give(invincible)
	return matched
}

func TestRecognizeFooBarStar(t *testing.T) {
	accept := []string{"", "foo", "bar", "foobar", "barfoo", "foobarfoo"}
	for _, in := range accept {
		a := NewArena[byte]()
		r := fooBarStar(t, a)
		if !recognize(a, r, []byte(in)) {
			t.Errorf("expected %q to match", in)
		}
	}

	reject := []string{"fo", "foob", "baz"}
	for _, in := range reject {
		a := NewArena[byte]()
		r := fooBarStar(t, a)
		if recognize(a, r, []byte(in)) {
			t.Errorf("expected %q not to match", in)
		}
	}
}

// TestRecursiveEquivalent builds L ≡ (L · ("foo" | "bar")) | ε, a
// self-referential definition, and checks it accepts the same language
// as the iterative Star form above.
func TestRecursiveEquivalent(t *testing.T) {
	build := func() (*Arena[byte], *Node[byte]) {
		a := NewArena[byte]()
		foo := SeqFromTokens(a, []byte("foo"))
		bar := SeqFromTokens(a, []byte("bar"))
		item, err := Alternate(a, foo, bar)
		if err != nil {
			t.Fatalf("Alternate: %v", err)
		}

		l := Placeholder(a)
		lThenItem, err := Sequence(a, l, item)
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		rhs, err := Alternate(a, lThenItem, Empty(a))
		if err != nil {
			t.Fatalf("Alternate: %v", err)
		}
		if err := Assign(l, rhs); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		return a, l
	}

	cases := []struct {
		in    string
		match bool
	}{
		{"", true},
		{"foo", true},
		{"bar", true},
		{"foobar", true},
		{"barfoo", true},
		{"foobarfoo", true},
		{"fo", false},
		{"foob", false},
		{"baz", false},
	}
	for _, c := range cases {
		a, root := build()
		if got := recognize(a, root, []byte(c.in)); got != c.match {
			t.Errorf("recognize(%q) = %v, want %v", c.in, got, c.match)
		}
	}
}

// TestBalancedParens is S3 from the grammar's testable properties:
// S ≡ '(' S ')' S | ε.
func TestBalancedParens(t *testing.T) {
	build := func() (*Arena[byte], *Node[byte]) {
		a := NewArena[byte]()
		s := Placeholder(a)
		lp := Terminal(a, '(')
		rp := Terminal(a, ')')

		lpS, err := Sequence(a, lp, s)
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		lpSrp, err := Sequence(a, lpS, rp)
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		body, err := Sequence(a, lpSrp, s)
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		rhs, err := Alternate(a, body, Empty(a))
		if err != nil {
			t.Fatalf("Alternate: %v", err)
		}
		if err := Assign(s, rhs); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		return a, s
	}

	cases := []struct {
		in    string
		match bool
	}{
		{"", true},
		{"()", true},
		{"(())", true},
		{"()()", true},
		{"(()())", true},
		{"(", false},
		{")(", false},
		{"(()", false},
	}
	for _, c := range cases {
		a, root := build()
		if got := recognize(a, root, []byte(c.in)); got != c.match {
			t.Errorf("recognize(%q) = %v, want %v", c.in, got, c.match)
		}
	}
}

// TestNullAbsorbs covers universal property 4: a Null on either side of
// a Sequence kills the whole match, for any input.
func TestNullAbsorbs(t *testing.T) {
	a := NewArena[byte]()
	anything, err := Repetition(a, AnyOf(a, []byte("ab")))
	if err != nil {
		t.Fatalf("Repetition: %v", err)
	}

	leftNull, err := Sequence(a, Null(a), anything)
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	rightNull, err := Sequence(a, anything, Null(a))
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}

	for _, in := range []string{"", "a", "ab", "aabb"} {
		if recognize(a, leftNull, []byte(in)) {
			t.Errorf("seq(Null, anything) matched %q", in)
		}
		if recognize(a, rightNull, []byte(in)) {
			t.Errorf("seq(anything, Null) matched %q", in)
		}
	}
}

// TestEmptyIdentity covers universal property 5.
func TestEmptyIdentity(t *testing.T) {
	cases := []string{"", "foo", "bar", "foobar"}
	for _, in := range cases {
		a1 := NewArena[byte]()
		plain := fooBarStar(t, a1)
		want := recognize(a1, plain, []byte(in))

		a2 := NewArena[byte]()
		withEmpty, err := Sequence(a2, Empty(a2), fooBarStar(t, a2))
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		got := recognize(a2, withEmpty, []byte(in))

		if got != want {
			t.Errorf("seq(Empty, G) on %q = %v, want %v", in, got, want)
		}
	}
}

// TestStarContainsEpsilon covers universal property 6.
func TestStarContainsEpsilon(t *testing.T) {
	a := NewArena[byte]()
	rep, err := Repetition(a, Terminal(a, 'z'))
	if err != nil {
		t.Fatalf("Repetition: %v", err)
	}
	if !Nullable(a, a.Step(), rep) {
		t.Errorf("Repetition should always be nullable")
	}
}

// TestIdempotentRecognition covers universal property 7: running the
// same input through the same grammar root twice, in the same arena,
// gives the same answer.
func TestIdempotentRecognition(t *testing.T) {
	for _, in := range []string{"", "foo", "foobarfoo", "baz"} {
		a1 := NewArena[byte]()
		r1 := fooBarStar(t, a1)
		first := recognize(a1, r1, []byte(in))
		second := recognize(a1, r1, []byte(in))

		if first != second {
			t.Errorf("recognize(%q) not idempotent: %v vs %v", in, first, second)
		}
	}
}

// TestArenaReuse covers universal property 8: after a run, the arena's
// non-stashed live set is empty, and the dead set is non-empty whenever
// any derivation happened so recycled nodes are available to the next
// run.
func TestArenaReuse(t *testing.T) {
	a := NewArena[byte]()
	root := fooBarStar(t, a)

	invincible := a.Steal()
	PrimeInvincible(invincible, 0)

	var step uint64
	n := root
	for _, tok := range []byte("foobar") {
		step++
		n = Derive(a, tok, step, n)
		a.Collect(IsDead[byte](step))
	}
	_ = Nullable(a, step, n)
	a.CollectAll()

	if got := a.Live(); got != 0 {
		t.Errorf("Live() after CollectAll = %v, want 0", got)
	}
	if a.Dead() == 0 {
		t.Errorf("Dead() after a run with derivation should be > 0")
	}

	a.Give(invincible)
	if got := a.Live(); got != len(invincible) {
		t.Errorf("Live() after Give = %v, want %v", got, len(invincible))
	}
}

// TestCycleSafety covers universal property 9: a self-referential
// grammar with no finite accepting string (S ≡ 'a' · S, an infinite
// stream of a's) terminates Derive and Nullable rather than looping
// forever, and correctly rejects every finite input.
func TestCycleSafety(t *testing.T) {
	for _, in := range []string{"", "a", "aaa", "aaaaaaaaaa"} {
		a := NewArena[byte]()
		s := Placeholder(a)
		rhs, err := Sequence(a, Terminal(a, 'a'), s)
		if err != nil {
			t.Fatalf("Sequence: %v", err)
		}
		if err := Assign(s, rhs); err != nil {
			t.Fatalf("Assign: %v", err)
		}

		if recognize(a, s, []byte(in)) {
			t.Errorf("recognize(%q) against an infinite-only cycle should be false", in)
		}
	}
}

func TestArenaMismatchDetected(t *testing.T) {
	a1 := NewArena[byte]()
	a2 := NewArena[byte]()
	n1 := Terminal(a1, 'a')
	n2 := Terminal(a2, 'b')

	if _, err := Alternate(a1, n1, n2); err == nil {
		t.Errorf("expected an arena mismatch error")
	}
}

func TestMalformedNodeDetected(t *testing.T) {
	a := NewArena[byte]()
	if _, err := Alternate(a, nil, Empty(a)); err == nil {
		t.Errorf("expected a malformed node error for nil left child")
	}
}
