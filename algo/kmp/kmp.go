// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// failure table. The scan walks the text left to right and never backs up in
// it; on a mismatch the table says how much of the matched prefix is
// reusable. It does best on texts with tight repetition, where matched
// prefixes are worth carrying forward.
package kmp

import "github.com/termfx/findfx/algo"

// Finder is a stateless Knuth-Morris-Pratt searcher. The failure table is
// built per call from the pattern, so one Finder is safe for concurrent use.
type Finder struct{}

var _ algo.Searcher = (*Finder)(nil)

func init() {
	algo.Register(NewFinder())
}

// NewFinder creates a Knuth-Morris-Pratt searcher.
func NewFinder() *Finder {
	return &Finder{}
}

// Algorithm returns the canonical algorithm identifier.
func (f *Finder) Algorithm() string {
	return "kmp"
}

// Aliases returns alternate names accepted for this algorithm.
func (f *Finder) Aliases() []string {
	return []string{"knuth-morris-pratt"}
}

// Description returns a one-line summary for catalog listings.
func (f *Finder) Description() string {
	return "forward scan reusing matched prefixes, strongest on repetitive text"
}

// FindIndex returns the 0-based offset of the first occurrence of pattern in
// text, or -1 when absent. An empty pattern never matches.
func (f *Finder) FindIndex(text, pattern []byte) int {
	n := len(text)
	m := len(pattern)
	if m == 0 || m > n {
		return -1
	}

	next := failureTable(pattern)
	i, j := 0, 0
	for j < n {
		for i > -1 && pattern[i] != text[j] {
			i = next[i]
		}
		i++
		j++
		if i == m {
			return j - m
		}
	}
	return -1
}

// FindIndexString is FindIndex over strings.
func (f *Finder) FindIndexString(text, pattern string) int {
	return f.FindIndex([]byte(text), []byte(pattern))
}

// failureTable builds the fallback table for pattern. next[i] is the pattern
// index to resume at after a mismatch against pattern[i], refined so a
// position repeating its border byte falls through to the border's own
// fallback instead of retrying the same byte.
func failureTable(pattern []byte) []int {
	next := make([]int, len(pattern))
	next[0] = -1

	i, j := 0, -1
	for i < len(pattern)-1 {
		for j > -1 && pattern[i] != pattern[j] {
			j = next[j]
		}
		i++
		j++
		if pattern[i] == pattern[j] {
			next[i] = next[j]
		} else {
			next[i] = j
		}
	}
	return next
}
