//go:build linux

package outputhandle

import "golang.org/x/sys/unix"

// Dup2 is missing on some linux architectures (arm64, riscv64).
func dup2(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
