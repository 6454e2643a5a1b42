// Package pager sends the process's standard output through an external
// pager such as more or less.
//
// Setup rewires descriptor 1 into a pipe read by the pager, so everything
// written to os.Stdout (including by child processes that inherit it) is
// paged. The returned Handle must be closed to restore stdout and reap the
// pager; Close is safe to call more than once, which makes
//
//	h, err := p.Setup()
//	...
//	defer h.Close()
//
// the usual pattern. Only one goroutine may write to stdout while a Handle
// is active.
package pager

import (
	"log/slog"
	"os"
	"os/exec"

	"github.com/kstenerud/gopager/internal/fdio"
)

// System bundles the process-level collaborators the pager consults. Nil
// fields are replaced by the real implementations.
type System struct {
	Descriptors fdio.Descriptors
	Spawner     Spawner
	LookupEnv   func(key string) (string, bool)
	LookPath    func(file string) (string, error)
	Environ     func() []string
}

// DefaultSystem returns the collaborators backed by the running process.
func DefaultSystem() System {
	return System{
		Descriptors: fdio.OS(),
		Spawner:     execSpawner{},
		LookupEnv:   os.LookupEnv,
		LookPath:    exec.LookPath,
		Environ:     os.Environ,
	}
}

func (s System) withDefaults() System {
	def := DefaultSystem()
	if s.Descriptors == nil {
		s.Descriptors = def.Descriptors
	}
	if s.Spawner == nil {
		s.Spawner = def.Spawner
	}
	if s.LookupEnv == nil {
		s.LookupEnv = def.LookupEnv
	}
	if s.LookPath == nil {
		s.LookPath = def.LookPath
	}
	if s.Environ == nil {
		s.Environ = def.Environ
	}
	return s
}

// Pager activates a pager for the process's standard output.
type Pager struct {
	cfg    Config
	sys    System
	logger *slog.Logger
}

// New creates a Pager for cfg using the real process environment.
// A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Pager {
	return NewWithSystem(cfg, logger, System{})
}

// NewWithSystem creates a Pager with explicit collaborators.
func NewWithSystem(cfg Config, logger *slog.Logger, sys System) *Pager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pager{
		cfg:    cfg.withDefaults(),
		sys:    sys.withDefaults(),
		logger: logger,
	}
}

// Setup starts the pager and redirects stdout into it.
//
// When paging is not wanted (stdout is not a terminal, NOPAGER is set, or no
// pager can be found) Setup returns an inactive Handle and a nil error, and
// stdout is left alone. A *ConfigError is returned for command lines that
// cannot be tokenized. If the pager cannot be started, the error wraps
// ErrSpawn or ErrRedirect; the Handle is inactive and stdout is unchanged,
// so callers may carry on without paging.
//
// The returned Handle is never nil.
func (p *Pager) Setup() (*Handle, error) {
	line, ok := p.gate()
	if !ok {
		return p.inactive(), nil
	}
	return p.launch(line)
}

// gate decides whether to launch at all. It has no side effects.
func (p *Pager) gate() (string, bool) {
	if !p.cfg.NoSkip && !p.sys.Descriptors.IsTerminal(fdio.Stdout) {
		p.logger.Debug("stdout is not a terminal, not paging")
		return "", false
	}
	line, ok := p.Resolve()
	if !ok {
		p.logger.Debug("no pager available", "env", p.cfg.EnvVar, "fallback", p.cfg.Fallback)
		return "", false
	}
	return line, true
}

func (p *Pager) inactive() *Handle {
	return &Handle{state: StateInactive, saved: -1, logger: p.logger}
}
