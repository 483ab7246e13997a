package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/termfx/findfx/algo"
	"github.com/termfx/findfx/core"
	"github.com/termfx/findfx/internal/model"
	"github.com/termfx/findfx/internal/scanner"
	"github.com/termfx/findfx/internal/util"
)

// Runner encapsulates one search invocation: target resolution, the worker
// pool, and per-file search execution.
type Runner struct {
	searcher algo.Searcher
	scanner  *scanner.Scanner
	cfg      *model.Config
}

// NewRunner resolves the configured algorithm against the default registry
// and prepares a scanner from the config's filter options.
func NewRunner(cfg *model.Config) (*Runner, error) {
	searcher, ok := algo.Default().Get(cfg.Algorithm)
	if !ok {
		return nil, model.Wrap(model.ECInvalidAlgo,
			fmt.Sprintf("unknown algorithm %q", cfg.Algorithm), model.ErrUnknownAlgorithm)
	}

	sc := scanner.New(scanner.Config{
		MaxBytes:       cfg.MaxFileSize,
		MaxFiles:       cfg.MaxFiles,
		FollowSymlinks: cfg.FollowSymlinks,
		IncludeGlobs:   cfg.Include,
		ExcludeGlobs:   cfg.Exclude,
		NoGitignore:    !cfg.UseIgnoreFiles,
	})

	return &Runner{
		searcher: searcher,
		scanner:  sc,
		cfg:      cfg,
	}, nil
}

// Searcher exposes the resolved algorithm.
func (r *Runner) Searcher() algo.Searcher {
	return r.searcher
}

// ResolveFiles expands the config's targets into the file list to search.
// The stdin pseudo-target "-" passes through untouched; everything else goes
// through glob expansion and the scanner.
func (r *Runner) ResolveFiles(ctx context.Context) ([]string, error) {
	var files []string
	var targets []string
	for _, target := range r.cfg.Targets {
		if target == "-" {
			files = append(files, "-")
			continue
		}
		targets = append(targets, target)
	}

	if len(targets) > 0 || len(files) == 0 {
		scanned, err := r.scanner.ScanTargets(ctx, util.ExpandGlobs(targets))
		if err != nil {
			return nil, model.Wrap(model.ECFileSystem, "resolving targets", err)
		}
		files = append(files, scanned...)
	}

	if len(files) == 0 {
		return nil, model.Wrap(model.ECInvalidInput, "no files to search", model.ErrNoTargets)
	}
	return files, nil
}

// Run searches every file with a pool of workers and returns one Result per
// file, sorted by path for stable output. Per-file errors are carried inside
// the Result rather than aborting the run.
func (r *Runner) Run(ctx context.Context, files []string) ([]model.Result, error) {
	pattern := []byte(r.cfg.Pattern)
	if len(pattern) == 0 {
		return nil, model.Wrap(model.ECInvalidInput, "pattern must not be empty", nil)
	}

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		results []model.Result
		wg      sync.WaitGroup
	)

	numW := r.cfg.Workers
	if numW < 1 {
		numW = runtime.NumCPU()
	}

	for i := 0; i < numW; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := r.searchFile(path, pattern)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, f := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- f:
		}
	}

	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, model.Wrap(model.ECUnknown, "search interrupted", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].File < results[j].File
	})
	return results, nil
}

// searchFile runs the configured searcher over one file or stdin.
func (r *Runner) searchFile(path string, pattern []byte) model.Result {
	start := time.Now()
	res := model.Result{
		File:          path,
		Pattern:       r.cfg.Pattern,
		Algorithm:     r.searcher.Algorithm(),
		Time:          start.Format(time.RFC3339),
		SchemaVersion: model.CurrentSchemaVersion,
		ToolVersion:   model.CurrentToolVersion,
		Offset:        -1,
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		res.Error = err.Error()
		res.ErrorCode = model.ECReadError
		res.DurationUS = time.Since(start).Microseconds()
		return res
	}

	res.Success = true
	res.FileSize = int64(len(data))

	offset := r.searcher.FindIndex(data, pattern)
	res.Offset = offset
	if offset >= 0 {
		res.Found = true
		res.Line, res.Column = util.LineColumn(data, offset)
		res.Preview = util.LinePreview(data, offset, core.PreviewMax)
	}
	res.DurationUS = time.Since(start).Microseconds()
	return res
}

// ExitCode maps run results to the grep convention: 0 when any file matched,
// 1 when none did, 2 when any file failed outright.
func ExitCode(results []model.Result) int {
	code := model.ExitNoMatch
	for _, res := range results {
		if !res.Success {
			return model.ExitError
		}
		if res.Found {
			code = model.ExitMatch
		}
	}
	return code
}

// Debugf prints diagnostics to stderr when verbose mode is on.
func Debugf(cfg *model.Config, format string, args ...any) {
	if cfg == nil || !cfg.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "findfx: "+format+"\n", args...)
}
