package pager

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"slices"

	"github.com/google/shlex"
	"github.com/kstenerud/gopager/internal/fdio"
)

// Process is a started pager.
type Process interface {
	Pid() int
	Kill() error
	Wait() error
}

// Spawner starts the pager program with stdin reading from the given file.
// The pager writes to the parent's current stdout and stderr.
type Spawner interface {
	Spawn(argv []string, env []string, stdin *os.File) (Process, error)
}

type execSpawner struct{}

func (execSpawner) Spawn(argv []string, env []string, stdin *os.File) (Process, error) {
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // G204: pager command comes from user configuration
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmdProcess{cmd: cmd}, nil
}

type cmdProcess struct {
	cmd *exec.Cmd
}

func (p cmdProcess) Pid() int    { return p.cmd.Process.Pid }
func (p cmdProcess) Kill() error { return p.cmd.Process.Kill() }
func (p cmdProcess) Wait() error { return p.cmd.Wait() }

// Tokenize splits a pager command line using shell quoting rules.
func Tokenize(line string) ([]string, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("pager command %q: %w: %w", line, ErrMalformedCommand, err)}
	}
	if len(argv) == 0 {
		return nil, &ConfigError{Err: fmt.Errorf("pager command %q: %w", line, ErrEmptyCommand)}
	}
	return argv, nil
}

// launch starts the pager for line and points stdout at it. On any failure
// stdout is left exactly as it was.
func (p *Pager) launch(line string) (*Handle, error) {
	argv, err := Tokenize(line)
	if err != nil {
		return p.inactive(), err
	}

	fds := p.sys.Descriptors
	r, w, err := fds.Pipe()
	if err != nil {
		return p.inactive(), fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	proc, err := p.sys.Spawner.Spawn(argv, p.childEnv(), r)
	_ = r.Close() // the pager holds its own copy
	if err != nil {
		_ = w.Close()
		return p.inactive(), fmt.Errorf("%w %q: %w", ErrSpawn, argv[0], err)
	}
	p.logger.Debug("pager started", "argv", argv, "pid", proc.Pid())

	saved, err := fds.Dup(fdio.Stdout)
	if err != nil {
		p.abandon(w, proc)
		return p.inactive(), fmt.Errorf("%w: %w", ErrRedirect, err)
	}
	if err := fds.Redirect(int(w.Fd()), fdio.Stdout); err != nil { //nolint:gosec // fd fits in int
		_ = fds.Close(saved)
		p.abandon(w, proc)
		return p.inactive(), fmt.Errorf("%w: %w", ErrRedirect, err)
	}
	// Descriptor 1 is now the only write end.
	_ = w.Close()

	return &Handle{
		state:  StateActive,
		proc:   proc,
		saved:  saved,
		fds:    fds,
		logger: p.logger,
	}, nil
}

// abandon stops a pager that never received stdout. An interactive pager
// would otherwise sit waiting for the user on an empty screen.
func (p *Pager) abandon(w *os.File, proc Process) {
	_ = w.Close()
	if err := proc.Kill(); err != nil {
		p.logger.Debug("kill pager", "pid", proc.Pid(), "error", err)
	}
	_ = proc.Wait()
}

// childEnv is the parent environment plus Config.Env, in key order so the
// result is stable. Later entries win in os/exec.
func (p *Pager) childEnv() []string {
	env := p.sys.Environ()
	for _, k := range slices.Sorted(maps.Keys(p.cfg.Env)) {
		env = append(env, k+"="+p.cfg.Env[k])
	}
	return env
}
