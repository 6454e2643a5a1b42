//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package fdio

import "os"

func (osDescriptors) Pipe() (*os.File, *os.File, error) { return nil, nil, ErrUnsupported }
func (osDescriptors) Dup(int) (int, error) { return -1, ErrUnsupported }
func (osDescriptors) Redirect(int, int) error { return ErrUnsupported }
func (osDescriptors) Restore(int, int) error { return ErrUnsupported }
func (osDescriptors) Close(int) error { return ErrUnsupported }
