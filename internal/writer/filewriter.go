// Package writer exposes sinks for serialized preferences files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// tempPattern names the temporary file created next to the target.
	tempPattern = ".prefkit-tmp-*"

	// DirPerm is used for vendor directories created on first write.
	DirPerm os.FileMode = 0o755

	// FilePerm is applied to the written file before it replaces the target.
	FilePerm os.FileMode = 0o644
)

// SyncMode controls durability of a write.
type SyncMode int

const (
	// SyncAuto syncs the temporary file before the rename.
	SyncAuto SyncMode = iota

	// SyncNone skips all syncing. Suitable for in-memory filesystems and tests.
	SyncNone

	// SyncFull syncs the temporary file (F_FULLFSYNC on macOS) and the parent
	// directory after the rename.
	SyncFull
)

// Writer is a destination for serialized preferences.
type Writer interface {
	WritePrefs(buf []byte) error
}

// FileWriter writes preferences bytes to a path atomically.
type FileWriter struct {
	Fs   afero.Fs
	Path string
	Sync SyncMode
}

// WritePrefs writes buf to the configured path atomically via temp file + rename.
// Missing parent directories are created first.
func (w *FileWriter) WritePrefs(buf []byte) error {
	fs := w.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	dir := filepath.Dir(w.Path)
	if err := fs.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := afero.TempFile(fs, dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if w.Sync != SyncNone {
		if syncErr := syncFile(tmpFile, w.Sync == SyncFull); syncErr != nil {
			return fmt.Errorf("sync temp file: %w", syncErr)
		}
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if chmodErr := fs.Chmod(tmpPath, FilePerm); chmodErr != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Atomic rename
	if renameErr := fs.Rename(tmpPath, w.Path); renameErr != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	if w.Sync == SyncFull {
		if syncErr := syncDir(fs, dir); syncErr != nil {
			return fmt.Errorf("sync directory: %w", syncErr)
		}
	}
	return nil
}

// syncDir syncs a directory so a completed rename survives power loss.
// Filesystems that do not hand out *os.File handles are skipped.
func syncDir(fs afero.Fs, dir string) error {
	d, err := fs.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	if f, ok := d.(*os.File); ok {
		return fsyncDir(f)
	}
	return nil
}

// syncFile flushes f to stable storage. OS files go through the platform
// syscall; other afero files use their own Sync.
func syncFile(f afero.File, full bool) error {
	if osf, ok := f.(*os.File); ok {
		return fdatasync(osf, full)
	}
	return f.Sync()
}
