package cli

import "fmt"

// UsageError indicates bad arguments or missing required args (exit code 2).
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewUsageError wraps a message as a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// childExitError carries a child command's non-zero exit status out of
// RunE so the pager is closed before the process exits.
type childExitError struct {
	code int
}

func (e *childExitError) Error() string { return fmt.Sprintf("command exited with status %d", e.code) }
