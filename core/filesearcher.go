package core

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/termfx/findfx/algo"
	"github.com/termfx/findfx/internal/util"
)

// PreviewMax caps the preview line length attached to each match.
const PreviewMax = 160

// FileSearcher runs one algo.Searcher across every file in a scope.
type FileSearcher struct {
	walker   *FileWalker
	searcher algo.Searcher
	workers  int
}

// NewFileSearcher creates a file searcher. workers <= 0 selects the walker's
// default fan-out.
func NewFileSearcher(searcher algo.Searcher, workers int) *FileSearcher {
	if workers <= 0 {
		workers = 8
	}
	return &FileSearcher{
		walker:   NewFileWalker(),
		searcher: searcher,
		workers:  workers,
	}
}

// SearchFiles discovers files under scope and reports the first occurrence of
// pattern in each. Files the walker flags with errors (unreadable, over the
// size cap) are counted as scanned but never read. The returned matches are
// sorted by path so output is stable regardless of worker scheduling.
func (fs *FileSearcher) SearchFiles(ctx context.Context, scope FileScope, pattern []byte) (*SearchResult, error) {
	start := time.Now()

	walkResults, err := fs.walker.Walk(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to walk files: %w", err)
	}

	matchChan := make(chan FileMatch, fs.workers)
	var (
		wg           sync.WaitGroup
		statsMu      sync.Mutex
		filesScanned int
		bytesScanned int64
	)

	for i := 0; i < fs.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for result := range walkResults {
				select {
				case <-ctx.Done():
					return
				default:
				}

				statsMu.Lock()
				filesScanned++
				statsMu.Unlock()

				if result.Error != nil {
					continue
				}

				match, n, ok := fs.searchFile(result, pattern)
				statsMu.Lock()
				bytesScanned += n
				statsMu.Unlock()
				if !ok {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case matchChan <- match:
				}
			}
		}()
	}

	var matches []FileMatch
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m := range matchChan {
			matches = append(matches, m)
		}
	}()

	wg.Wait()
	close(matchChan)
	<-done

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].FilePath < matches[j].FilePath
	})

	return &SearchResult{
		Pattern:      string(pattern),
		Algorithm:    fs.searcher.Algorithm(),
		FilesScanned: filesScanned,
		FilesMatched: len(matches),
		BytesScanned: bytesScanned,
		ScanDuration: time.Since(start).Milliseconds(),
		Matches:      matches,
	}, nil
}

// searchFile reads one file and reports its first match. The returned byte
// count covers what was actually read, even on a miss.
func (fs *FileSearcher) searchFile(wr WalkResult, pattern []byte) (FileMatch, int64, bool) {
	data, err := os.ReadFile(wr.Path)
	if err != nil {
		return FileMatch{}, 0, false
	}

	offset := fs.searcher.FindIndex(data, pattern)
	if offset < 0 {
		return FileMatch{}, int64(len(data)), false
	}

	line, col := util.LineColumn(data, offset)
	match := FileMatch{
		Match: Match{
			Offset:  offset,
			Line:    line,
			Column:  col,
			Preview: util.LinePreview(data, offset, PreviewMax),
		},
		FilePath:  wr.Path,
		Algorithm: fs.searcher.Algorithm(),
	}
	if wr.Info != nil {
		match.FileSize = wr.Info.Size()
		match.ModTime = wr.Info.ModTime().Unix()
	}
	return match, int64(len(data)), true
}
