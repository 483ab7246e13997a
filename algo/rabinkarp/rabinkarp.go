// Package rabinkarp implements exact substring search with a rolling hash.
// The pattern hash is compared against the hash of each text window; only
// windows whose hashes collide are verified byte for byte. Its worst case is
// poor next to the table-driven algorithms, but the constant factor on plain
// prose is small.
package rabinkarp

import (
	"bytes"

	"github.com/termfx/findfx/algo"
)

// primeRK is the prime base of the rolling hash.
const primeRK = 16777619

// Finder is a stateless Rabin-Karp searcher, safe for concurrent use.
type Finder struct{}

var _ algo.Searcher = (*Finder)(nil)

func init() {
	algo.Register(NewFinder())
}

// NewFinder creates a Rabin-Karp searcher.
func NewFinder() *Finder {
	return &Finder{}
}

// Algorithm returns the canonical algorithm identifier.
func (f *Finder) Algorithm() string {
	return "rabinkarp"
}

// Aliases returns alternate names accepted for this algorithm.
func (f *Finder) Aliases() []string {
	return []string{"rk", "rabin-karp"}
}

// Description returns a one-line summary for catalog listings.
func (f *Finder) Description() string {
	return "rolling hash over text windows, verified byte for byte on collision"
}

// FindIndex returns the 0-based offset of the first occurrence of pattern in
// text, or -1 when absent. An empty pattern never matches; the guard also
// keeps the zero hash of an empty window from reading as a hit at offset 0.
func (f *Finder) FindIndex(text, pattern []byte) int {
	n := len(text)
	m := len(pattern)
	if m == 0 || m > n {
		return -1
	}

	hashp, pow := hash(pattern)
	var h uint32
	for i := 0; i < m; i++ {
		h = h*primeRK + uint32(text[i])
	}
	if h == hashp && bytes.Equal(text[:m], pattern) {
		return 0
	}
	for i := m; i < n; {
		h *= primeRK
		h += uint32(text[i])
		h -= pow * uint32(text[i-m])
		i++
		if h == hashp && bytes.Equal(text[i-m:i], pattern) {
			return i - m
		}
	}
	return -1
}

// FindIndexString is FindIndex over strings.
func (f *Finder) FindIndexString(text, pattern string) int {
	return f.FindIndex([]byte(text), []byte(pattern))
}

// hash returns the hash of pattern and the multiplicative factor that
// removes the trailing byte when the window slides one position.
func hash(pattern []byte) (uint32, uint32) {
	var h uint32
	for i := 0; i < len(pattern); i++ {
		h = h*primeRK + uint32(pattern[i])
	}
	var pow, sq uint32 = 1, primeRK
	for i := len(pattern); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return h, pow
}
