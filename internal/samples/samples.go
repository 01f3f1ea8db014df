// Package samples builds the worked grammars used by the CLI demos and
// exercised again by recognizer's own tests. FooBarList and
// FooBarRecursiveList mirror two small standalone recognizer programs
// that recognized the same language two different ways (iterative vs.
// left-recursive), and SExpr mirrors a third recognizing a minimal
// Lisp-like atom/list syntax. BalancedParens, SingleCharStar and
// EmptyOnly have no such program behind them.
package samples

import (
	"fmt"

	"github.com/mjbshaw/derp/recognizer"
)

// FooBarList builds ("foo" | "bar")*.
func FooBarList(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
	foo := f.Literal([]byte("foo"))
	bar := f.Literal([]byte("bar"))
	alt, err := foo.Or(bar)
	if err != nil {
		return nil, err
	}
	return alt.Star()
}

// FooBarRecursiveList builds the left-recursive L ≡ (L · ("foo" | "bar")) | ε,
// accepting the same language as FooBarList by a different route: every
// prefix of the list is threaded back through L itself rather than
// expressed with Star.
func FooBarRecursiveList(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
	foo := f.Literal([]byte("foo"))
	bar := f.Literal([]byte("bar"))
	item, err := foo.Or(bar)
	if err != nil {
		return nil, err
	}

	l := f.Placeholder()
	lThenItem, err := l.Then(item)
	if err != nil {
		return nil, err
	}
	rhs, err := lThenItem.Or(f.Empty())
	if err != nil {
		return nil, err
	}
	if err := l.Assign(rhs); err != nil {
		return nil, err
	}
	return l, nil
}

// BalancedParens builds S ≡ '(' S ')' S | ε.
func BalancedParens(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
	s := f.Placeholder()
	lparen := f.Terminal('(')
	rparen := f.Terminal(')')

	body, err := seqAll(lparen, s, rparen, s)
	if err != nil {
		return nil, err
	}
	rhs, err := body.Or(f.Empty())
	if err != nil {
		return nil, err
	}
	if err := s.Assign(rhs); err != nil {
		return nil, err
	}
	return s, nil
}

// SExprComponents names the named sub-languages SExpr builds, for
// callers (the show CLI subcommand) that want to print more than just
// the top-level sexp grammar.
type SExprComponents struct {
	Symbol     *recognizer.Grammar[byte]
	Number     *recognizer.Grammar[byte]
	Boolean    *recognizer.Grammar[byte]
	Whitespace *recognizer.Grammar[byte]
	Atom       *recognizer.Grammar[byte]
	SexpList   *recognizer.Grammar[byte]
	Sexp       *recognizer.Grammar[byte]
}

// SExpr builds a minimal s-expression grammar: symbols (letters,
// underscore, and the operator characters Lisp-like identifiers such as
// "+", "set!", or "<=" are built from), numbers (optional sign, optional
// decimal point, digits), booleans, and nested whitespace-separated
// lists.
//
//	symbol   = [_a-zA-Z+\-*/<>=!?]+
//	number   = '-'? [0-9]* '.'? [0-9]+
//	boolean  = "#t" | "#f"
//	atom     = symbol | number | boolean
//	sexplist = (sexp whitespace sexplist) | ε
//	sexp     = atom | '(' whitespace sexplist whitespace ')'
func SExpr(f *recognizer.Factory[byte]) (*SExprComponents, error) {
	lowerAlpha, err := recognizer.CharRange(f, 'a', 'z')
	if err != nil {
		return nil, err
	}
	upperAlpha, err := recognizer.CharRange(f, 'A', 'Z')
	if err != nil {
		return nil, err
	}
	alpha, err := altAll(lowerAlpha, upperAlpha, f.Terminal('_'), f.AnyOf([]byte("+-*/<>=!?")))
	if err != nil {
		return nil, err
	}
	symbol, err := alpha.Plus()
	if err != nil {
		return nil, err
	}

	digit, err := recognizer.CharRange(f, '0', '9')
	if err != nil {
		return nil, err
	}
	optMinus, err := f.Terminal('-').Opt()
	if err != nil {
		return nil, err
	}
	digitsStar, err := digit.Star()
	if err != nil {
		return nil, err
	}
	optDot, err := f.Terminal('.').Opt()
	if err != nil {
		return nil, err
	}
	digitsPlus, err := digit.Plus()
	if err != nil {
		return nil, err
	}
	number, err := seqAll(optMinus, digitsStar, optDot, digitsPlus)
	if err != nil {
		return nil, err
	}

	boolean, err := f.Literal([]byte("#t")).Or(f.Literal([]byte("#f")))
	if err != nil {
		return nil, err
	}

	ws, err := f.AnyOf([]byte(" \r\n\t")).Star()
	if err != nil {
		return nil, err
	}

	atom, err := altAll(symbol, number, boolean)
	if err != nil {
		return nil, err
	}

	sexplist := f.Placeholder()
	sexp := f.Placeholder()

	listItem, err := seqAll(sexp, ws, sexplist)
	if err != nil {
		return nil, err
	}
	sexplistRHS, err := listItem.Or(f.Empty())
	if err != nil {
		return nil, err
	}
	if err := sexplist.Assign(sexplistRHS); err != nil {
		return nil, err
	}

	grouped, err := seqAll(f.Terminal('('), ws, sexplist, ws, f.Terminal(')'))
	if err != nil {
		return nil, err
	}
	sexpRHS, err := atom.Or(grouped)
	if err != nil {
		return nil, err
	}
	if err := sexp.Assign(sexpRHS); err != nil {
		return nil, err
	}

	return &SExprComponents{
		Symbol:     symbol,
		Number:     number,
		Boolean:    boolean,
		Whitespace: ws,
		Atom:       atom,
		SexpList:   sexplist,
		Sexp:       sexp,
	}, nil
}

// SingleCharStar builds 'a'*.
func SingleCharStar(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
	return f.Terminal('a').Star()
}

// EmptyOnly builds ε, the grammar accepting only the empty input.
func EmptyOnly(f *recognizer.Factory[byte]) *recognizer.Grammar[byte] {
	return f.Empty()
}

func seqAll(gs ...*recognizer.Grammar[byte]) (*recognizer.Grammar[byte], error) {
	if len(gs) == 0 {
		return nil, fmt.Errorf("samples: seqAll requires at least one grammar")
	}
	result := gs[0]
	for _, g := range gs[1:] {
		var err error
		result, err = result.Then(g)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func altAll(gs ...*recognizer.Grammar[byte]) (*recognizer.Grammar[byte], error) {
	if len(gs) == 0 {
		return nil, fmt.Errorf("samples: altAll requires at least one grammar")
	}
	result := gs[0]
	for _, g := range gs[1:] {
		var err error
		result, err = result.Or(g)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
