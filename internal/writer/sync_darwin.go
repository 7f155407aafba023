//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// On macOS, if full is true, use F_FULLFSYNC so data reaches the physical
// disk, not just the drive cache. Otherwise, use regular fsync.
func fdatasync(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	// macOS doesn't have fdatasync, use fsync
	return unix.Fsync(int(f.Fd()))
}

// fsyncDir performs a full fsync, needed for directory entries.
func fsyncDir(d *os.File) error {
	return unix.Fsync(int(d.Fd()))
}
