package util

import "bytes"

// --- Offset Helpers ---

// LineColumn converts a byte offset in data into 1-based line and column
// numbers. The column counts bytes from the line start, not runes. Offsets
// outside data are clamped, so the position one past the last byte is valid
// and reports the end of the final line.
func LineColumn(data []byte, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}

	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	if i := bytes.LastIndexByte(prefix, '\n'); i >= 0 {
		col = offset - i
	} else {
		col = offset + 1
	}
	return line, col
}

// LinePreview returns the line containing offset, without its trailing
// newline or carriage return, truncated to max bytes with "..." appended.
// max <= 0 disables truncation.
func LinePreview(data []byte, offset, max int) string {
	if len(data) == 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}

	start := bytes.LastIndexByte(data[:offset], '\n') + 1
	end := bytes.IndexByte(data[offset:], '\n')
	if end < 0 {
		end = len(data)
	} else {
		end += offset
	}

	line := bytes.TrimRight(data[start:end], "\r")
	if max > 0 && len(line) > max {
		return string(line[:max]) + "..."
	}
	return string(line)
}
