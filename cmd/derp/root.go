package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "derp",
	Short: "Recognize strings against a recursive grammar",
	Long: `derp builds small grammars out of Brzozowski derivatives and checks
whether an input belongs to their language, including grammars that
refer to themselves (recursive grammars), using a region-based arena and
lazy, memoized derivation so cycles terminate.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
