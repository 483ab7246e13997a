package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func asRelative(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("rel %s: %v", f, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScanTargets_DirectoryDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.txt":     "b",
		"a.txt":     "a",
		"sub/c.txt": "c",
	})

	s := New(Config{NoGitignore: true})
	files, err := s.ScanTargets(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	got := asRelative(t, dir, files)
	want := []string{"a.txt", "b.txt", "sub/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted %v, got %v", want, got)
		}
	}
}

func TestScanTargets_SkipsWellKnownDirs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"keep.txt":                "k",
		".git/config":             "x",
		"node_modules/pkg/idx.js": "x",
		"vendor/lib/lib.go":       "x",
		".hidden/secret.txt":      "x",
	})

	s := New(Config{NoGitignore: true})
	files, err := s.ScanTargets(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	got := asRelative(t, dir, files)
	if len(got) != 1 || got[0] != "keep.txt" {
		t.Errorf("expected only keep.txt, got %v", got)
	}
}

func TestScanTargets_Gitignore(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		".gitignore":      "*.log\nignored/\n",
		"keep.txt":        "k",
		"noise.log":       "x",
		"ignored/gone.md": "x",
	})
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	s := New(Config{})
	files, err := s.ScanTargets(context.Background(), []string{"."})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != ".gitignore" || names[1] != "keep.txt" {
		t.Errorf("expected [.gitignore keep.txt], got %v", names)
	}
}

func TestScanTargets_IncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.go":          "a",
		"a_test.go":     "a",
		"b.txt":         "b",
		"deep/nest.go":  "n",
		"deep/nest.txt": "n",
	})

	s := New(Config{
		NoGitignore:  true,
		IncludeGlobs: []string{"*.go"},
		ExcludeGlobs: []string{"*_test.go"},
	})
	files, err := s.ScanTargets(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	got := asRelative(t, dir, files)
	want := []string{"a.go", "deep/nest.go"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestScanTargets_SizeCap(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"small.txt": "tiny",
		"large.txt": "this content pushes the file well past the cap",
	})

	s := New(Config{NoGitignore: true, MaxBytes: 10})
	files, err := s.ScanTargets(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	got := asRelative(t, dir, files)
	if len(got) != 1 || got[0] != "small.txt" {
		t.Errorf("expected only small.txt, got %v", got)
	}
}

func TestScanTargets_MaxFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt": "1", "b.txt": "2", "c.txt": "3", "d.txt": "4",
	})

	s := New(Config{NoGitignore: true, MaxFiles: 2})
	files, err := s.ScanTargets(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}

	got := asRelative(t, dir, files)
	// Deterministic truncation: sorted first, then capped.
	if len(got) != 2 || got[0] != "a.txt" || got[1] != "b.txt" {
		t.Errorf("expected [a.txt b.txt], got %v", got)
	}
}

func TestScanTargets_ExplicitFileBypassesInclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"plain.md": "hello"})

	s := New(Config{NoGitignore: true, IncludeGlobs: []string{"*.go"}})
	target := filepath.Join(dir, "plain.md")
	files, err := s.ScanTargets(context.Background(), []string{target})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}
	if len(files) != 1 || files[0] != target {
		t.Errorf("expected explicit file to pass through, got %v", files)
	}
}

func TestScanTargets_DeduplicatesOverlappingTargets(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"one.txt": "1"})
	target := filepath.Join(dir, "one.txt")

	s := New(Config{NoGitignore: true})
	files, err := s.ScanTargets(context.Background(), []string{target, target})
	if err != nil {
		t.Fatalf("ScanTargets: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 deduplicated file, got %v", files)
	}
}

func TestScanTargets_MissingTarget(t *testing.T) {
	s := New(Config{NoGitignore: true})
	if _, err := s.ScanTargets(context.Background(), []string{"/definitely/not/here"}); err == nil {
		t.Error("expected error for missing target")
	}
}

func TestScanTargets_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Config{NoGitignore: true})
	if _, err := s.ScanTargets(ctx, []string{dir}); err == nil {
		t.Error("expected context error")
	}
}
