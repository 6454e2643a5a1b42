package pager

import (
	"errors"
	"fmt"
)

// Sentinel errors for pager setup.
var (
	ErrMalformedCommand = errors.New("malformed pager command")
	ErrEmptyCommand     = errors.New("pager command names no program")
	ErrSpawn            = errors.New("start pager")
	ErrRedirect         = errors.New("redirect stdout to pager")
)

// ConfigError indicates a pager command that can never be run as written.
// Unlike spawn failures it is not recoverable by falling back to plain output
// and is always returned to the caller of Setup.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError wraps a message as a ConfigError.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}
