package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
	"github.com/spf13/cobra"

	"github.com/mjbshaw/derp/recognizer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sexp",
		Short: "Lex a line of input with maleeni and recognize it as an s-expression",
		Long: `sexp reads one line from stdin, tokenizes it with a maleeni lexer
(symbols, numbers, booleans and parentheses, skipping whitespace), and
recognizes the resulting token stream against a grammar defined over
token kinds rather than raw bytes — the same sexp grammar "show sexp"
prints, one level up.`,
		Args: cobra.NoArgs,
		RunE: runSexp,
	}
	rootCmd.AddCommand(cmd)
}

// sexpLexSpec declares the token kinds runSexp lexes with maleeni. Each
// pattern starts with a character none of the others can start with, so
// no two kinds compete for the same lexeme and the order of the entries
// does not change the result.
func sexpLexSpec() *mlspec.LexSpec {
	return &mlspec.LexSpec{
		Entries: []*mlspec.LexEntry{
			{Kind: mlspec.LexKindName("boolean"), Pattern: mlspec.LexPattern("#t|#f")},
			{Kind: mlspec.LexKindName("lparen"), Pattern: mlspec.LexPattern(`\(`)},
			{Kind: mlspec.LexKindName("rparen"), Pattern: mlspec.LexPattern(`\)`)},
			{Kind: mlspec.LexKindName("number"), Pattern: mlspec.LexPattern(`-?[0-9]*\.?[0-9]+`)},
			{Kind: mlspec.LexKindName("symbol"), Pattern: mlspec.LexPattern(`[_a-zA-Z][_a-zA-Z0-9]*`)},
			{Kind: mlspec.LexKindName("whitespace"), Pattern: mlspec.LexPattern(`[ \t\r\n]+`)},
		},
	}
}

func runSexp(cmd *cobra.Command, args []string) (retErr error) {
	defer func() {
		panicked := false
		v := recover()
		if v != nil {
			err, ok := v.(error)
			if !ok {
				retErr = fmt.Errorf("an unexpected error occurred: %v", v)
				fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
				return
			}

			retErr = err
			panicked = true
		}

		if retErr != nil && panicked {
			fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
		}
	}()

	fmt.Fprint(cmd.OutOrStdout(), "input: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("cannot read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	kinds, err := lexKinds(line)
	if err != nil {
		return err
	}

	f := recognizer.NewFactory[string]()
	grammar, err := sexpTokenGrammar(f)
	if err != nil {
		return err
	}

	r := recognizer.New(grammar)
	matched := r.Recognize(kinds)
	fmt.Fprintf(cmd.OutOrStdout(), "tokens: %v\n", kinds)
	fmt.Fprintf(cmd.OutOrStdout(), "matches? %v\n", matched)
	return nil
}

// lexKinds tokenizes src with maleeni and returns the matched token
// kind names, dropping whitespace.
func lexKinds(src string) ([]string, error) {
	compiled, err, cErrs := mlcompiler.Compile(sexpLexSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			return nil, fmt.Errorf("cannot compile lexical spec: %v", cErrs[0])
		}
		return nil, err
	}

	lexer, err := mldriver.NewLexer(mldriver.NewLexSpec(compiled), strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	var kinds []string
	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			break
		}
		if tok.Invalid {
			return nil, fmt.Errorf("invalid token %q at row %v, col %v", tok.Lexeme, tok.Row, tok.Col)
		}
		kind := compiled.KindNames[tok.KindID]
		if kind == mlspec.LexKindNameNil || kind.String() == "whitespace" {
			continue
		}
		kinds = append(kinds, kind.String())
	}
	return kinds, nil
}

// sexpTokenGrammar mirrors samples.SExpr one level up: its alphabet is
// maleeni token kinds (as recognized by lexKinds) rather than bytes.
func sexpTokenGrammar(f *recognizer.Factory[string]) (*recognizer.Grammar[string], error) {
	atom := f.AnyOf([]string{"symbol", "number", "boolean"})

	sexplist := f.Placeholder()
	sexp := f.Placeholder()

	listItem, err := sexp.Then(sexplist)
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

	grouped, err := f.Terminal("lparen").Then(sexplist)
	if err != nil {
		return nil, err
	}
	grouped, err = grouped.Then(f.Terminal("rparen"))
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

	return sexp, nil
}
