package main

import (
	"fmt"
	"sort"

	"github.com/mjbshaw/derp/internal/samples"
	"github.com/mjbshaw/derp/recognizer"
)

// grammarBuilders names every worked sample grammar the match and show
// subcommands can operate on, each over bytes.
var grammarBuilders = map[string]func(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error){
	"foobar-list": samples.FooBarList,
	"foobar-rec":  samples.FooBarRecursiveList,
	"parens":      samples.BalancedParens,
	"a-star":      samples.SingleCharStar,
	"empty": func(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
		return samples.EmptyOnly(f), nil
	},
	"sexp": func(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
		c, err := samples.SExpr(f)
		if err != nil {
			return nil, err
		}
		return c.Sexp, nil
	},
	"any-rune": func(f *recognizer.Factory[byte]) (*recognizer.Grammar[byte], error) {
		return recognizer.AnyRune(f)
	},
}

func grammarNames() []string {
	names := make([]string, 0, len(grammarBuilders))
	for name := range grammarBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildGrammar(name string) (*recognizer.Factory[byte], *recognizer.Grammar[byte], error) {
	build, ok := grammarBuilders[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown grammar %q (available: %v)", name, grammarNames())
	}
	f := recognizer.NewFactory[byte]()
	g, err := build(f)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

func byteFormat(b byte) string {
	return string(rune(b))
}
