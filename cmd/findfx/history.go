package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/termfx/findfx/db"
	"github.com/termfx/findfx/internal/config"
	"github.com/termfx/findfx/internal/model"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := config.Load()

			store, err := db.Open(env.DBPath, env.Debug)
			if err != nil {
				return model.Wrap(model.ECDatabase, "opening history store", err)
			}
			defer store.Close()

			searches, err := store.RecentSearches(limit)
			if err != nil {
				return model.Wrap(model.ECDatabase, "loading history", err)
			}

			w := cmd.OutOrStdout()
			if len(searches) == 0 {
				fmt.Fprintln(w, "no recorded searches")
				return nil
			}

			for _, s := range searches {
				outcome := "miss"
				if s.Found {
					outcome = fmt.Sprintf("hit at %d", s.Offset)
				}
				fmt.Fprintf(w, "%s  %-10s %-24q %s (%d/%d files, %s)\n",
					s.CreatedAt.Format(time.DateTime),
					s.Algorithm,
					s.Pattern,
					outcome,
					s.FilesMatched,
					s.FilesScanned,
					time.Duration(s.DurationMicros)*time.Microsecond,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of rows to show")
	return cmd
}
