package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mjbshaw/derp/recognizer"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "match <grammar> <input>",
		Short:   "Test whether input belongs to a sample grammar's language",
		Example: `  derp match foobar-list foobarfoo`,
		Args:    cobra.ExactArgs(2),
		RunE:    runMatch,
	}
	rootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) (retErr error) {
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

	_, g, err := buildGrammar(args[0])
	if err != nil {
		return err
	}

	r := recognizer.New(g)
	matched := r.Recognize([]byte(args[1]))
	fmt.Fprintf(cmd.OutOrStdout(), "matches? %v\n", matched)
	return nil
}
