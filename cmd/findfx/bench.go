package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termfx/findfx/algo"
	"github.com/termfx/findfx/internal/config"
	"github.com/termfx/findfx/internal/model"
	"github.com/termfx/findfx/internal/scanner"
)

func newBenchCmd() *cobra.Command {
	var (
		pattern string
		rounds  int
	)

	cmd := &cobra.Command{
		Use:   "bench [target...]",
		Short: "Time every registered algorithm over a corpus",
		Long: `Load the target files into memory once, then run every registered
algorithm over the whole corpus for a number of rounds, reporting
per-algorithm wall time and checking that all algorithms agree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, pattern, rounds, args)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search (required)")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 10, "repetitions per algorithm")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func runBench(cmd *cobra.Command, pattern string, rounds int, targets []string) error {
	if pattern == "" {
		return model.Wrap(model.ECInvalidInput, "pattern must not be empty", nil)
	}
	if rounds < 1 {
		rounds = 1
	}

	env := config.Load()
	sc := scanner.New(scanner.Config{
		MaxBytes: env.MaxFileSize,
		MaxFiles: env.MaxFiles,
	})
	files, err := sc.ScanTargets(cmd.Context(), targets)
	if err != nil {
		return model.Wrap(model.ECFileSystem, "resolving targets", err)
	}

	var corpus [][]byte
	var totalBytes int64
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			continue
		}
		corpus = append(corpus, data)
		totalBytes += int64(len(data))
	}
	if len(corpus) == 0 {
		return model.Wrap(model.ECInvalidInput, "no readable files to benchmark", model.ErrNoTargets)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "corpus: %d files, %d bytes, pattern %q, %d rounds\n",
		len(corpus), totalBytes, pattern, rounds)

	pat := []byte(pattern)
	baseline := make([]int, len(corpus))
	haveBaseline := false

	for _, s := range algo.Default().List() {
		offsets := make([]int, len(corpus))

		start := time.Now()
		for r := 0; r < rounds; r++ {
			for i, data := range corpus {
				offsets[i] = s.FindIndex(data, pat)
			}
		}
		elapsed := time.Since(start)

		hits := 0
		for _, off := range offsets {
			if off >= 0 {
				hits++
			}
		}

		status := "ok"
		if !haveBaseline {
			copy(baseline, offsets)
			haveBaseline = true
		} else {
			for i := range offsets {
				if offsets[i] != baseline[i] {
					status = "DISAGREES"
					break
				}
			}
		}

		fmt.Fprintf(w, "%-12s %12v  %4d/%d files hit  %s\n",
			s.Algorithm(), elapsed, hits, len(corpus), status)
	}

	return nil
}
