//go:build linux || darwin || freebsd || netbsd || openbsd

package fdio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func (osDescriptors) Pipe() (*os.File, *os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("create pipe: %w", err)
	}
	// The write end will sit behind descriptor 1, which os.Stdout drives
	// with plain blocking writes.
	if err := unix.SetNonblock(int(w.Fd()), false); err != nil { //nolint:gosec // fd fits in int
		_ = r.Close()
		_ = w.Close()
		return nil, nil, fmt.Errorf("set pipe blocking: %w", err)
	}
	return r, w, nil
}

func (osDescriptors) Dup(fd int) (int, error) {
	nfd, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0) //nolint:gosec // fd is non-negative
	if err != nil {
		return -1, fmt.Errorf("dup fd %d: %w", fd, err)
	}
	return nfd, nil
}

func (osDescriptors) Redirect(src, dst int) error {
	if src == dst {
		return nil
	}
	if err := dup2(src, dst); err != nil {
		return fmt.Errorf("redirect fd %d to fd %d: %w", dst, src, err)
	}
	return nil
}

func (d osDescriptors) Restore(saved, dst int) error {
	if err := d.Redirect(saved, dst); err != nil {
		return err
	}
	return d.Close(saved)
}

func (osDescriptors) Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close fd %d: %w", fd, err)
	}
	return nil
}
