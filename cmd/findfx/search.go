package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termfx/findfx/db"
	"github.com/termfx/findfx/internal/cli"
	"github.com/termfx/findfx/internal/config"
	"github.com/termfx/findfx/internal/model"
	"github.com/termfx/findfx/models"
)

type searchFlags struct {
	algo           string
	workers        int
	jsonOutput     bool
	verbose        bool
	include        []string
	exclude        []string
	maxFileSize    int64
	noIgnore       bool
	followSymlinks bool
	maxFiles       int
	noHistory      bool
	offsetOnly     bool
}

func newSearchCmd() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search PATTERN [target...]",
		Short: "Search files for the first occurrence of PATTERN",
		Long: `Search the given files and directories for PATTERN and report the
first occurrence per file. Targets default to the current directory;
"-" reads from stdin. Exit codes follow grep: 0 match, 1 no match, 2 error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&flags.algo, "algo", "a", "boyermoore", "search algorithm (see 'findfx algos')")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "concurrent workers, 0 means environment default")
	cmd.Flags().BoolVarP(&flags.jsonOutput, "json", "j", false, "output results as JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "include file globs (*.go, **/*.txt)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "exclude file globs")
	cmd.Flags().Int64Var(&flags.maxFileSize, "max-file-size", 0, "per-file size cap in bytes, 0 means environment default")
	cmd.Flags().BoolVar(&flags.noIgnore, "no-ignore", false, "disable .gitignore filtering")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links")
	cmd.Flags().IntVar(&flags.maxFiles, "max-files", 0, "cap on files to search, 0 means environment default")
	cmd.Flags().BoolVar(&flags.noHistory, "no-history", false, "skip recording this search in history")
	cmd.Flags().BoolVar(&flags.offsetOnly, "offset-only", false, "print file:offset instead of file:line:column")

	return cmd
}

// buildConfig merges environment defaults with command line flags.
func buildConfig(env *config.Config, flags *searchFlags, pattern string, targets []string) *model.Config {
	cfg := &model.Config{
		Pattern:        pattern,
		Algorithm:      flags.algo,
		Targets:        targets,
		Include:        flags.include,
		Exclude:        flags.exclude,
		MaxFileSize:    env.MaxFileSize,
		MaxFiles:       env.MaxFiles,
		FollowSymlinks: flags.followSymlinks,
		UseIgnoreFiles: !flags.noIgnore,
		Workers:        env.Workers,
		JSONOutput:     flags.jsonOutput,
		OffsetOnly:     flags.offsetOnly,
		Verbose:        flags.verbose || env.Debug,
		NoHistory:      flags.noHistory || !env.History,
		DBPath:         env.DBPath,
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.maxFileSize > 0 {
		cfg.MaxFileSize = flags.maxFileSize
	}
	if flags.maxFiles > 0 {
		cfg.MaxFiles = flags.maxFiles
	}
	return cfg
}

func runSearch(cmd *cobra.Command, flags *searchFlags, pattern string, targets []string) error {
	env := config.Load()
	cfg := buildConfig(env, flags, pattern, targets)

	runner, err := cli.NewRunner(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	files, err := runner.ResolveFiles(ctx)
	if err != nil {
		return err
	}
	cli.Debugf(cfg, "searching %d files with %s", len(files), runner.Searcher().Algorithm())

	start := time.Now()
	results, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		if err := cli.RenderJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		cli.RenderText(cmd.OutOrStdout(), results, cfg)
	}

	if !cfg.NoHistory {
		recordHistory(cfg, runner, results, time.Since(start), env.HistoryLimit)
	}

	os.Exit(cli.ExitCode(results))
	return nil
}

// recordHistory persists the aggregate outcome. History failures are
// reported in verbose mode only; they never change the search exit code.
func recordHistory(cfg *model.Config, runner *cli.Runner, results []model.Result, elapsed time.Duration, keep int) {
	store, err := db.Open(cfg.DBPath, cfg.Verbose)
	if err != nil {
		cli.Debugf(cfg, "history disabled: %v", err)
		return
	}
	defer store.Close()

	matched := 0
	firstOffset := -1
	target := ""
	for _, res := range results {
		if res.Found {
			if matched == 0 {
				firstOffset = res.Offset
				target = res.File
			}
			matched++
		}
	}
	if target == "" && len(cfg.Targets) > 0 {
		target = cfg.Targets[0]
	}

	extras, _ := json.Marshal(map[string]any{
		"include": cfg.Include,
		"exclude": cfg.Exclude,
		"workers": cfg.Workers,
	})

	search := &models.Search{
		Pattern:        cfg.Pattern,
		Algorithm:      runner.Searcher().Algorithm(),
		Target:         target,
		Found:          matched > 0,
		Offset:         firstOffset,
		FilesScanned:   len(results),
		FilesMatched:   matched,
		DurationMicros: elapsed.Microseconds(),
		Extras:         extras,
	}

	if err := store.RecordSearch(nil, search); err != nil {
		cli.Debugf(cfg, "recording history: %v", err)
		return
	}
	if err := store.PruneHistory(keep); err != nil {
		cli.Debugf(cfg, "pruning history: %v", err)
	}
}
