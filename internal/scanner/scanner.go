package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// skipDirs are directory names never worth descending into.
var skipDirs = []string{".git", "vendor", "node_modules", "dist", "build", ".findfx"}

// Scanner resolves CLI targets into the concrete list of files to search.
type Scanner struct {
	maxBytes       int64
	maxFiles       int
	followSymlinks bool
	includeGlobs   []string
	excludeGlobs   []string
	noGitignore    bool
	gitignore      *ignore.GitIgnore
}

// Config holds scanner configuration options.
type Config struct {
	MaxBytes       int64
	MaxFiles       int
	FollowSymlinks bool
	IncludeGlobs   []string
	ExcludeGlobs   []string
	NoGitignore    bool
}

// New creates a new scanner with the given configuration.
func New(cfg Config) *Scanner {
	s := &Scanner{
		maxBytes:       cfg.MaxBytes,
		maxFiles:       cfg.MaxFiles,
		followSymlinks: cfg.FollowSymlinks,
		includeGlobs:   cfg.IncludeGlobs,
		excludeGlobs:   cfg.ExcludeGlobs,
		noGitignore:    cfg.NoGitignore,
	}

	if !cfg.NoGitignore {
		s.loadGitignore()
	}

	return s
}

// loadGitignore loads .gitignore patterns from the working directory and its
// parents. Closer files take precedence, so the collected list is reversed
// before compiling.
func (s *Scanner) loadGitignore() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	var gitignoreFiles []string
	dir := cwd
	for {
		gitignorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			gitignoreFiles = append(gitignoreFiles, gitignorePath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if len(gitignoreFiles) == 0 {
		return
	}

	slices.Reverse(gitignoreFiles)
	if len(gitignoreFiles) == 1 {
		if gi, err := ignore.CompileIgnoreFile(gitignoreFiles[0]); err == nil {
			s.gitignore = gi
		}
		return
	}
	if gi, err := ignore.CompileIgnoreFileAndLines(gitignoreFiles[0], gitignoreFiles[1:]...); err == nil {
		s.gitignore = gi
	}
}

// ScanTargets resolves a list of file and directory targets into the sorted,
// deduplicated set of files to search. An empty target list means the current
// working directory.
func (s *Scanner) ScanTargets(ctx context.Context, targets []string) ([]string, error) {
	if len(targets) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		targets = []string{cwd}
	}

	var allFiles []string
	for _, target := range targets {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		files, err := s.scanTarget(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("scanning target %s: %w", target, err)
		}
		allFiles = append(allFiles, files...)
	}

	files := s.deduplicateFiles(allFiles)
	sort.Strings(files)
	if s.maxFiles > 0 && len(files) > s.maxFiles {
		files = files[:s.maxFiles]
	}
	return files, nil
}

// scanTarget processes a single target (file or directory).
func (s *Scanner) scanTarget(ctx context.Context, target string) ([]string, error) {
	info, err := os.Lstat(target)
	if err != nil {
		return nil, fmt.Errorf("accessing target %s: %w", target, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !s.followSymlinks {
			return nil, nil
		}
		resolved, err := filepath.EvalSymlinks(target)
		if err != nil {
			return nil, fmt.Errorf("resolving symlink %s: %w", target, err)
		}
		return s.scanTarget(ctx, resolved)
	}

	// Explicitly named files bypass the include filter but still honor the
	// size cap and exclude globs.
	if info.Mode().IsRegular() {
		if s.shouldProcessFile(target, info, true) {
			return []string{target}, nil
		}
		return nil, nil
	}

	if info.IsDir() {
		return s.scanDirectory(ctx, target)
	}

	return nil, nil // Skip sockets, devices, and other special files
}

// scanDirectory recursively scans a directory for files.
func (s *Scanner) scanDirectory(ctx context.Context, dir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fullPath := filepath.Join(dir, path)

		if d.IsDir() {
			if path != "." && s.shouldSkipDirectory(path) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("getting file info for %s: %w", fullPath, err)
			}

			if s.shouldProcessFile(path, info, false) {
				files = append(files, fullPath)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}

	return files, nil
}

// shouldProcessFile applies gitignore, size, and glob filters to a file.
// explicit marks targets named directly on the command line, which skip the
// include filter and gitignore rules.
func (s *Scanner) shouldProcessFile(path string, info os.FileInfo, explicit bool) bool {
	if s.gitignore != nil && !explicit {
		if s.gitignore.MatchesPath(path) {
			return false
		}
	}

	if s.maxBytes > 0 && info.Size() > s.maxBytes {
		return false
	}

	if !explicit && len(s.includeGlobs) > 0 {
		matched := false
		for _, pattern := range s.includeGlobs {
			if s.matchGlob(path, pattern) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range s.excludeGlobs {
		if s.matchGlob(path, pattern) {
			return false
		}
	}

	return true
}

// matchGlob tries the full relative path first, then the basename for
// patterns without a path separator.
func (s *Scanner) matchGlob(path, pattern string) bool {
	if matched, err := doublestar.PathMatch(pattern, filepath.ToSlash(path)); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}

// shouldSkipDirectory prunes ignored, well-known, and hidden directories.
func (s *Scanner) shouldSkipDirectory(path string) bool {
	if s.gitignore != nil && s.gitignore.MatchesPath(path) {
		return true
	}

	dirname := filepath.Base(path)
	if slices.Contains(skipDirs, dirname) {
		return true
	}

	return strings.HasPrefix(dirname, ".") && dirname != "."
}

// deduplicateFiles removes duplicate file paths from the list.
func (s *Scanner) deduplicateFiles(files []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, file := range files {
		if !seen[file] {
			seen[file] = true
			result = append(result, file)
		}
	}

	return result
}
