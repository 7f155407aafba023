//go:build !linux && !freebsd && !darwin

package writer

import "os"

// fdatasync falls back to os.File.Sync on platforms without a dedicated
// syscall path.
func fdatasync(f *os.File, _ bool) error {
	return f.Sync()
}

// fsyncDir is a no-op: directories cannot be synced portably here.
func fsyncDir(*os.File) error {
	return nil
}
