package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termfx/findfx/algo/catalog"
)

func newAlgosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algos",
		Short: "List the registered search algorithms",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, info := range catalog.Algorithms() {
				fmt.Fprintf(w, "%-12s", info.ID)
				if len(info.Aliases) > 0 {
					fmt.Fprintf(w, " (%s)", strings.Join(info.Aliases, ", "))
				}
				if info.Description != "" {
					fmt.Fprintf(w, "\n    %s", info.Description)
				}
				fmt.Fprintln(w)
			}
		},
	}
}
