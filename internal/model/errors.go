package model

import (
	"encoding/json"
	"errors"
)

// Sentinel errors for programmatic checking.
var (
	ErrNoMatchFound     = errors.New("pattern not found")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrNoTargets        = errors.New("no files to search")
)

// ErrorCode provides a machine-readable error type for JSON output.
type ErrorCode string

const (
	ECNone         ErrorCode = ""
	ECNoMatch      ErrorCode = "ERR_NO_MATCH"
	ECInvalidAlgo  ErrorCode = "ERR_INVALID_ALGO"
	ECInvalidInput ErrorCode = "ERR_INVALID_INPUT"
	ECReadError    ErrorCode = "ERR_READ_FILE"
	ECFileSystem   ErrorCode = "ERR_FILE_SYSTEM"
	ECFileTooLarge ErrorCode = "ERR_FILE_TOO_LARGE"
	ECConfigError  ErrorCode = "ERR_CONFIG"
	ECDatabase     ErrorCode = "ERR_DATABASE"
	ECUnknown      ErrorCode = "ERR_UNKNOWN"
)

// CLIError is a uniform error payload for both human and JSON output.
type CLIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`

	inner error
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Unwrap exposes the wrapped error so errors.Is keeps matching sentinels.
func (e CLIError) Unwrap() error {
	return e.inner
}

func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap generates a CLIError with code and keeps inner both as detail text
// and as the unwrap target.
func Wrap(code ErrorCode, msg string, inner error) error {
	ce := CLIError{Code: code, Message: msg, inner: inner}
	if inner != nil {
		ce.Detail = inner.Error()
	}
	return ce
}
