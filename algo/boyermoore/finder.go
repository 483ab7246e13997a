package boyermoore

import "github.com/termfx/findfx/algo"

// Finder adapts the Matcher to the algo.Searcher contract. It holds no
// state; every call builds a fresh Matcher over the inputs, so one Finder is
// safe for concurrent use.
type Finder struct{}

var _ algo.Searcher = (*Finder)(nil)

func init() {
	algo.Register(NewFinder())
}

// NewFinder creates a Boyer-Moore searcher.
func NewFinder() *Finder {
	return &Finder{}
}

// Algorithm returns the canonical algorithm identifier.
func (f *Finder) Algorithm() string {
	return "boyermoore"
}

// Aliases returns alternate names accepted for this algorithm.
func (f *Finder) Aliases() []string {
	return []string{"bm", "boyer-moore"}
}

// Description returns a one-line summary for catalog listings.
func (f *Finder) Description() string {
	return "backward scan with the bad-character skip table, strongest on long patterns"
}

// FindIndex returns the first occurrence of pattern in text, or -1.
func (f *Finder) FindIndex(text, pattern []byte) int {
	return New(text, pattern).Search()
}

// FindIndexString is FindIndex over strings.
func (f *Finder) FindIndexString(text, pattern string) int {
	return f.FindIndex([]byte(text), []byte(pattern))
}
