//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
// The full parameter is ignored on Linux/FreeBSD.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}

// fsyncDir performs a full fsync, needed for directory entries.
func fsyncDir(d *os.File) error {
	return unix.Fsync(int(d.Fd()))
}
