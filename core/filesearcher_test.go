package core

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/termfx/findfx/algo/boyermoore"
)

func TestFileSearcher_SearchFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"hit.txt":       "first line\nthe needle sits here\nlast line",
		"miss.txt":      "nothing of interest",
		"sub/again.txt": "needle at offset zero",
	})

	searcher := NewFileSearcher(boyermoore.NewFinder(), 4)
	result, err := searcher.SearchFiles(context.Background(), FileScope{Path: dir}, []byte("needle"))
	if err != nil {
		t.Fatalf("SearchFiles: %v", err)
	}

	if result.FilesScanned != 3 {
		t.Errorf("expected 3 files scanned, got %d", result.FilesScanned)
	}
	if result.FilesMatched != 2 {
		t.Fatalf("expected 2 files matched, got %d", result.FilesMatched)
	}
	if result.Algorithm != "boyermoore" {
		t.Errorf("expected algorithm boyermoore, got %s", result.Algorithm)
	}
	if result.BytesScanned == 0 {
		t.Error("expected nonzero bytes scanned")
	}

	// Matches come back sorted by path: hit.txt before sub/again.txt.
	first := result.Matches[0]
	if first.Offset != 15 {
		t.Errorf("expected offset 15 in hit.txt, got %d", first.Offset)
	}
	if first.Line != 2 || first.Column != 5 {
		t.Errorf("expected line 2 col 5, got line %d col %d", first.Line, first.Column)
	}
	if first.Preview != "the needle sits here" {
		t.Errorf("unexpected preview %q", first.Preview)
	}

	second := result.Matches[1]
	if second.Offset != 0 || second.Line != 1 || second.Column != 1 {
		t.Errorf("expected match at start, got offset %d line %d col %d",
			second.Offset, second.Line, second.Column)
	}
}

func TestFileSearcher_EmptyPatternNeverMatches(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "content"})

	searcher := NewFileSearcher(boyermoore.NewFinder(), 2)
	result, err := searcher.SearchFiles(context.Background(), FileScope{Path: dir}, nil)
	if err != nil {
		t.Fatalf("SearchFiles: %v", err)
	}
	if result.FilesMatched != 0 {
		t.Errorf("empty pattern must not match, got %d matches", result.FilesMatched)
	}
}

func TestFileSearcher_SizeCapSkipsRead(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"small.txt": "needle",
		"large.txt": "padding padding padding needle padding padding",
	})

	searcher := NewFileSearcher(boyermoore.NewFinder(), 2)
	scope := FileScope{Path: dir, MaxFileSize: 10}
	result, err := searcher.SearchFiles(context.Background(), scope, []byte("needle"))
	if err != nil {
		t.Fatalf("SearchFiles: %v", err)
	}

	if result.FilesMatched != 1 {
		t.Fatalf("expected only the small file to match, got %d", result.FilesMatched)
	}
	if result.Matches[0].FilePath != filepath.Join(dir, "small.txt") {
		t.Errorf("unexpected match %+v", result.Matches[0])
	}
}

func TestFileSearcher_Cancellation(t *testing.T) {
	dir := t.TempDir()
	files := make(map[string]string, 64)
	for i := 0; i < 64; i++ {
		files[string(rune('a'+i%26))+"/f"+string(rune('0'+i%10))+".txt"] = "body"
	}
	writeTree(t, dir, files)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)

	searcher := NewFileSearcher(boyermoore.NewFinder(), 2)
	if _, err := searcher.SearchFiles(ctx, FileScope{Path: dir}, []byte("body")); err == nil {
		t.Skip("walk finished before the deadline fired")
	}
}
