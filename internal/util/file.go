package util

import "path/filepath"

// ExpandGlobs expands a list of file paths, including those with glob
// patterns the shell did not expand. Paths without metacharacters and
// patterns with no matches pass through unchanged.
func ExpandGlobs(files []string) []string {
	var expandedFiles []string
	for _, file := range files {
		matches, err := filepath.Glob(file)
		if err != nil || len(matches) == 0 {
			expandedFiles = append(expandedFiles, file)
			continue
		}
		expandedFiles = append(expandedFiles, matches...)
	}
	return expandedFiles
}
