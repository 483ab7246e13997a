package core

// Match represents one located occurrence of the pattern
type Match struct {
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Preview string `json:"preview,omitempty"`
}

// FileMatch represents a match with file information
type FileMatch struct {
	Match            // Embedded base match
	FilePath  string `json:"file_path"` // Path as discovered by the walker
	FileSize  int64  `json:"file_size"` // File size in bytes
	ModTime   int64  `json:"mod_time"`  // Last modification time (Unix timestamp)
	Algorithm string `json:"algorithm"` // Searcher that produced the match
}

// FileScope defines which files to process in filesystem operations
type FileScope struct {
	Path           string   `json:"path"`                    // Root path to scan
	Include        []string `json:"include,omitempty"`       // File patterns to include (*.txt, **/*.go)
	Exclude        []string `json:"exclude,omitempty"`       // File patterns to exclude
	MaxDepth       int      `json:"max_depth,omitempty"`     // Max directory depth (0 = unlimited)
	MaxFiles       int      `json:"max_files,omitempty"`     // Max files to process (0 = unlimited)
	MaxFileSize    int64    `json:"max_file_size,omitempty"` // Per-file size cap in bytes (0 = unlimited)
	FollowSymlinks bool     `json:"follow_symlinks"`         // Follow symbolic links
}

// SearchResult aggregates one search across a scope
type SearchResult struct {
	Pattern      string      `json:"pattern"`
	Algorithm    string      `json:"algorithm"`
	FilesScanned int         `json:"files_scanned"`
	FilesMatched int         `json:"files_matched"`
	BytesScanned int64       `json:"bytes_scanned"`
	ScanDuration int64       `json:"scan_duration_ms"`
	Matches      []FileMatch `json:"matches"`
}
