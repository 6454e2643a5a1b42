package pager

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

// events records the order of operations across the fakes.
type events []string

func (e *events) add(name string) { *e = append(*e, name) }

type fakeDescriptors struct {
	log *events

	terminal    bool
	pipeErr     error
	dupErr      error
	redirectErr error
	restoreErr  error
	nullErr     error

	restores  int
	redirects int
	closed    []int
}

const fakeSavedFd = 42

func (f *fakeDescriptors) Pipe() (*os.File, *os.File, error) {
	f.log.add("pipe")
	if f.pipeErr != nil {
		return nil, nil, f.pipeErr
	}
	return os.Pipe()
}

func (f *fakeDescriptors) Dup(int) (int, error) {
	f.log.add("dup")
	if f.dupErr != nil {
		return -1, f.dupErr
	}
	return fakeSavedFd, nil
}

func (f *fakeDescriptors) Redirect(int, int) error {
	f.log.add("redirect")
	f.redirects++
	return f.redirectErr
}

func (f *fakeDescriptors) Restore(saved, _ int) error {
	f.log.add("restore")
	f.restores++
	return f.restoreErr
}

func (f *fakeDescriptors) Close(fd int) error {
	f.log.add("close")
	f.closed = append(f.closed, fd)
	return nil
}

func (f *fakeDescriptors) IsTerminal(int) bool { return f.terminal }

func (f *fakeDescriptors) OpenNull() (*os.File, error) {
	f.log.add("null")
	if f.nullErr != nil {
		return nil, f.nullErr
	}
	return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
}

type fakeProcess struct {
	log     *events
	waits   int
	kills   int
	waitErr error
}

func (p *fakeProcess) Pid() int { return 4242 }

func (p *fakeProcess) Kill() error {
	p.log.add("kill")
	p.kills++
	return nil
}

func (p *fakeProcess) Wait() error {
	p.log.add("wait")
	p.waits++
	return p.waitErr
}

type fakeSpawner struct {
	log *events

	err   error
	calls int
	argv  []string
	env   []string
	proc  *fakeProcess
}

func (s *fakeSpawner) Spawn(argv []string, env []string, stdin *os.File) (Process, error) {
	s.log.add("spawn")
	s.calls++
	s.argv = argv
	s.env = env
	if stdin == nil {
		return nil, errors.New("spawn without stdin")
	}
	if s.err != nil {
		return nil, s.err
	}
	s.proc = &fakeProcess{log: s.log}
	return s.proc, nil
}

type recordingFlusher struct {
	log   *events
	count int
	err   error
}

func (f *recordingFlusher) Flush() error {
	f.log.add("flush")
	f.count++
	return f.err
}

// fakeEnv is a map-backed environment for LookupEnv.
type fakeEnv map[string]string

func (e fakeEnv) lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// harness wires a Pager to fakes. Stdout is a terminal and "more" is on
// PATH unless a test says otherwise.
type harness struct {
	log     events
	fds     *fakeDescriptors
	spawner *fakeSpawner
	env     fakeEnv
	path    map[string]bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		env:  fakeEnv{},
		path: map[string]bool{"more": true},
	}
	h.fds = &fakeDescriptors{log: &h.log, terminal: true}
	h.spawner = &fakeSpawner{log: &h.log}
	return h
}

func (h *harness) pager(cfg Config) *Pager {
	return NewWithSystem(cfg, nil, System{
		Descriptors: h.fds,
		Spawner:     h.spawner,
		LookupEnv:   h.env.lookup,
		LookPath: func(file string) (string, error) {
			if h.path[file] {
				return "/usr/bin/" + file, nil
			}
			return "", exec.ErrNotFound
		},
		Environ: func() []string { return []string{"HOME=/home/test", "LESS=parent"} },
	})
}
