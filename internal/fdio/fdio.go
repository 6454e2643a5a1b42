// Package fdio exposes the descriptor-level operations needed to reroute
// standard output: pipes, duplicates, redirects, and terminal detection.
// The Descriptors interface lets callers substitute a fake in tests so no
// real descriptor of the test process is touched.
package fdio

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Well-known descriptor slots.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// ErrUnsupported is returned on platforms without descriptor rerouting.
var ErrUnsupported = errors.New("descriptor redirection not supported on this platform")

// Descriptors is the platform capability used by the pager.
type Descriptors interface {
	// Pipe creates a unidirectional pipe whose ends are in blocking mode.
	Pipe() (r, w *os.File, err error)
	// Dup duplicates fd onto a new close-on-exec descriptor.
	Dup(fd int) (int, error)
	// Redirect atomically makes dst refer to the same file as src.
	Redirect(src, dst int) error
	// Restore redirects saved onto dst and then releases saved. On failure
	// saved is left open so the caller can retry.
	Restore(saved, dst int) error
	// Close releases fd.
	Close(fd int) error
	// IsTerminal reports whether fd is an interactive terminal.
	IsTerminal(fd int) bool
	// OpenNull opens the discard sink for writing.
	OpenNull() (*os.File, error)
}

// OS returns the Descriptors implementation backed by real system calls.
func OS() Descriptors {
	return osDescriptors{}
}

type osDescriptors struct{}

// IsTerminal also accepts Cygwin/MSYS pseudo-terminals, which x/term does
// not recognise.
func (osDescriptors) IsTerminal(fd int) bool {
	return term.IsTerminal(fd) || isatty.IsCygwinTerminal(uintptr(fd)) //nolint:gosec // fd is a small non-negative slot number
}

func (osDescriptors) OpenNull() (*os.File, error) {
	return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
}
