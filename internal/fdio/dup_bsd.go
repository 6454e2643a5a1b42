//go:build darwin || freebsd || netbsd || openbsd

package fdio

import "golang.org/x/sys/unix"

func dup2(src, dst int) error {
	return unix.Dup2(src, dst)
}
