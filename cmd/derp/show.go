package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mjbshaw/derp/internal/lang"
	"github.com/mjbshaw/derp/internal/samples"
	"github.com/mjbshaw/derp/recognizer"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar>",
		Short:   "Print a sample grammar in the ∅/ε/alt/seq/rep notation",
		Example: `  derp show sexp`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) (retErr error) {
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

	if args[0] == "sexp" {
		return showSExpr(cmd)
	}

	_, g, err := buildGrammar(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), g.String(byteFormat))
	return nil
}

// showSExpr prints every named sub-grammar of the sexp sample on its own
// line, the same way sexp.cpp drives its names vector through
// toString(names): each entry renders with the others substituted by
// name rather than unrolled inline, which is the only readable way to
// print sexp and sexplist at all given they refer to each other.
func showSExpr(cmd *cobra.Command) error {
	f := recognizer.NewFactory[byte]()
	c, err := samples.SExpr(f)
	if err != nil {
		return err
	}

	named := []struct {
		name string
		g    *recognizer.Grammar[byte]
	}{
		{"symbol", c.Symbol},
		{"number", c.Number},
		{"boolean", c.Boolean},
		{"whitespace", c.Whitespace},
		{"atom", c.Atom},
		{"sexplist", c.SexpList},
		{"sexp", c.Sexp},
	}

	names := make(map[*lang.Node[byte]]string, len(named))
	for _, n := range named {
		names[n.g.Node()] = n.name
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "grammar:")
	for _, n := range named {
		fmt.Fprintf(out, "%v = %v\n", n.name, n.g.Describe(byteFormat, names))
	}
	return nil
}
