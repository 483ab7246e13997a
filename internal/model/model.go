package model

// Config holds the resolved runtime options for one invocation, merged from
// environment defaults and command line flags.
type Config struct {
	Pattern   string
	Algorithm string
	Targets   []string

	Include        []string
	Exclude        []string
	MaxFileSize    int64
	MaxFiles       int
	FollowSymlinks bool
	UseIgnoreFiles bool

	Workers    int
	JSONOutput bool
	OffsetOnly bool
	Verbose    bool

	NoHistory bool
	DBPath    string
}

// Result holds the outcome of searching a single target.
type Result struct {
	File          string    `json:"file"`
	Pattern       string    `json:"pattern"`
	Algorithm     string    `json:"algorithm"`
	Time          string    `json:"time"`
	SchemaVersion int       `json:"schema_version"`
	ToolVersion   string    `json:"tool_version"`
	Success       bool      `json:"success"`
	Found         bool      `json:"found"`
	Offset        int       `json:"offset"`
	Line          int       `json:"line,omitempty"`
	Column        int       `json:"column,omitempty"`
	Preview       string    `json:"preview,omitempty"`
	FileSize      int64     `json:"file_size,omitempty"`
	DurationUS    int64     `json:"duration_us"`
	Error         string    `json:"error,omitempty"`
	ErrorCode     ErrorCode `json:"error_code,omitempty"`
}

const (
	CurrentSchemaVersion = 1
	CurrentToolVersion   = "0.1.0"
)

// Process exit codes, following the grep convention.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)
