// Package boyermoore implements exact substring search using the
// Boyer-Moore bad-character rule. The Matcher precomputes, from the pattern
// alone, the last index at which every possible byte value occurs. The scan
// then compares pattern to text right to left and, on a mismatch, uses that
// table to slide the pattern past alignments that cannot match, which makes
// the expected case markedly sub-linear even though the worst case is still
// O((n-m+1)*m) comparisons.
package boyermoore

// alphabetSize is the number of distinct byte values, so the skip table
// covers every possible text byte with a single array index.
const alphabetSize = 256

// Matcher owns a text buffer, a pattern buffer, and the bad-character skip
// table derived from the pattern. The table depends only on the pattern and
// is rebuilt whenever the pattern changes, never lazily.
//
// A Matcher has no internal locking. SearchPattern rewrites the pattern and
// skip table that Search reads, so calls on a shared instance require
// external synchronization. Distinct instances are fully independent.
type Matcher struct {
	text    []byte
	pattern []byte

	// last[b] is the highest index in pattern at which byte b occurs, or -1
	// when pattern does not contain b.
	last [alphabetSize]int
}

// New returns a Matcher over text with an initial pattern. Either slice may
// be empty or nil; construction never fails. The skip table is built
// immediately. The Matcher keeps the slices it is given, so callers must not
// mutate them while searches run.
func New(text, pattern []byte) *Matcher {
	m := &Matcher{text: text, pattern: pattern}
	m.buildSkipTable()
	return m
}

// Text returns the text buffer the Matcher scans.
func (m *Matcher) Text() []byte {
	return m.text
}

// Pattern returns the pattern the skip table is currently built from.
func (m *Matcher) Pattern() []byte {
	return m.pattern
}

// Search returns the 0-based offset of the first occurrence of the pattern
// in the text, or -1 when the pattern does not occur. An empty pattern never
// matches and yields -1, even against an empty text; it is not treated as
// matching at offset 0. A pattern longer than the text yields -1. Search has
// no side effects, so repeated calls return the same value.
func (m *Matcher) Search() int {
	n := len(m.text)
	k := len(m.pattern)
	if k == 0 || k > n {
		return -1
	}

	// maxAlign is the last offset at which the pattern still fits.
	maxAlign := n - k
	s := 0
	for s <= maxAlign {
		p := k - 1
		for p >= 0 && m.text[s+p] == m.pattern[p] {
			p--
		}
		if p < 0 {
			return s
		}

		// text[s+p] is the bad character. Shift so the pattern's rightmost
		// occurrence of it lines up under the text position that exposed it.
		shift := p - m.last[m.text[s+p]]
		if gs := m.goodSuffixShift(p); gs > shift {
			shift = gs
		}
		if shift < 1 {
			// The bad character's last occurrence is at or right of p. A
			// non-positive shift would stall or move backward, so step by
			// one; this clamp is what guarantees termination.
			shift = 1
		}
		s += shift
	}
	return -1
}

// SearchPattern replaces the stored pattern, rebuilds the skip table from
// scratch, and then scans exactly as Search does. It is the only way to
// change the pattern, so the table can never be stale relative to it.
func (m *Matcher) SearchPattern(pattern []byte) int {
	m.pattern = pattern
	m.buildSkipTable()
	return m.Search()
}

// buildSkipTable records the last occurrence index of every pattern byte.
// Bytes absent from the pattern stay at -1.
func (m *Matcher) buildSkipTable() {
	for i := range m.last {
		m.last[i] = -1
	}
	for i, b := range m.pattern {
		m.last[b] = i
	}
}

// goodSuffixShift reports the shift the good-suffix rule would propose for a
// mismatch at pattern index p. The rule is not implemented and always
// proposes 0, leaving the bad-character rule and the minimum step of 1 to
// decide the shift. A real implementation would slot in here, joining the
// shift selection in Search through the same max.
func (m *Matcher) goodSuffixShift(p int) int {
	_ = p
	return 0
}
