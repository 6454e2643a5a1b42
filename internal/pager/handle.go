package pager

import (
	"fmt"
	"log/slog"

	"github.com/kstenerud/gopager/internal/fdio"
)

// State is the lifecycle position of a Handle.
type State int

const (
	// StateInactive means no pager was started; Close does nothing.
	StateInactive State = iota
	// StateActive means stdout is flowing into the pager.
	StateActive
	// StateFinalizing means Close is tearing the redirection down.
	StateFinalizing
	// StateClosed means stdout is restored and the pager has exited.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateFinalizing:
		return "finalizing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Flusher is a buffered writer whose contents must reach stdout before the
// pager is shut down, such as a *bufio.Writer wrapping os.Stdout.
type Flusher interface {
	Flush() error
}

// noCopy lets go vet's copylocks check flag copied Handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns an active stdout redirection. Obtain one from Pager.Setup and
// release it with Close.
type Handle struct {
	_ noCopy

	state    State
	proc     Process
	saved    int
	fds      fdio.Descriptors
	flushers []Flusher
	logger   *slog.Logger
}

// Active reports whether stdout is currently being paged.
func (h *Handle) Active() bool {
	return h != nil && h.state == StateActive
}

// State returns the handle's lifecycle state.
func (h *Handle) State() State {
	if h == nil {
		return StateInactive
	}
	return h.state
}

// Pid returns the pager's process ID, or 0 if no pager was started.
func (h *Handle) Pid() int {
	if h == nil || h.proc == nil {
		return 0
	}
	return h.proc.Pid()
}

// AddFlusher registers f to be flushed into the pager during Close.
func (h *Handle) AddFlusher(f Flusher) {
	if h == nil || f == nil {
		return
	}
	h.flushers = append(h.flushers, f)
}

// Close flushes pending output into the pager, restores the original stdout
// and waits for the pager to exit, which for an interactive pager means
// until the user dismisses it.
//
// Only the first call on an active handle does anything. Flush failures are
// logged and ignored; the returned error reports a failure to restore stdout.
func (h *Handle) Close() error {
	if h == nil || h.state != StateActive {
		return nil
	}
	h.state = StateFinalizing

	h.flush()
	h.drainToNull()
	err := h.restore()
	h.wait()

	h.state = StateClosed
	return err
}

func (h *Handle) flush() {
	for _, f := range h.flushers {
		if err := f.Flush(); err != nil {
			h.logger.Debug("flush output to pager", "error", err)
		}
	}
}

// drainToNull points stdout at the null device and flushes again, so any
// output produced from here on is dropped rather than landing on the
// terminal after the pager has drawn. This also drops the last reference
// to the pipe's write end, letting the pager see EOF.
func (h *Handle) drainToNull() {
	null, err := h.fds.OpenNull()
	if err != nil {
		h.logger.Debug("open null device", "error", err)
		return
	}
	defer null.Close() //nolint:errcheck // stdout holds its own reference

	if err := h.fds.Redirect(int(null.Fd()), fdio.Stdout); err != nil { //nolint:gosec // fd fits in int
		h.logger.Debug("redirect stdout to null device", "error", err)
		return
	}
	h.flush()
}

func (h *Handle) restore() error {
	if err := h.fds.Restore(h.saved, fdio.Stdout); err != nil {
		h.logger.Error("restore stdout", "saved_fd", h.saved, "error", err)
		return fmt.Errorf("restore stdout: %w", err)
	}
	h.saved = -1
	return nil
}

func (h *Handle) wait() {
	if h.proc == nil {
		return
	}
	if err := h.proc.Wait(); err != nil {
		h.logger.Debug("pager exited", "pid", h.proc.Pid(), "error", err)
		return
	}
	h.logger.Debug("pager exited", "pid", h.proc.Pid())
}
