package util

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a unified diff between two texts, labeling both sides
// with path. It returns "" when the texts are equal and a plain byte-count
// header when diff generation itself fails.
func UnifiedDiff(from, to, path string, context int) string {
	if from == to {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: path,
		ToFile:   path,
		Context:  context,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("--- %s\n+++ %s\n@@ changes @@\n%d bytes -> %d bytes",
			path, path, len(from), len(to))
	}
	return text
}
