package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termfx/findfx/internal/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "findfx",
		Short: "Byte-exact substring search across files",
		Long: `findfx locates the first occurrence of a byte pattern in files,
using interchangeable exact-match algorithms (Boyer-Moore bad-character,
Knuth-Morris-Pratt, Rabin-Karp).`,
		Version:       model.CurrentToolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(),
		newAlgosCmd(),
		newBenchCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the findfx version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "findfx %s (schema %d)\n",
				model.CurrentToolVersion, model.CurrentSchemaVersion)
		},
	}
}
