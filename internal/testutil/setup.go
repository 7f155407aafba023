// Package testutil holds fixtures shared by prefkit tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/joshuapare/prefkit/internal/paths"
)

// SetupFs returns an in-memory filesystem holding files, keyed by path.
//
// Example:
//
//	fs := testutil.SetupFs(t, map[string]string{
//	    "/cfg/acme.test/demo.prefs": testutil.Lines("[.]", "k:v"),
//	})
func SetupFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}

// ReadFile returns the content of name, failing the test if it cannot be
// read.
func ReadFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// Exists reports whether name exists on fs.
func Exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()
	_, err := fs.Stat(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("stat %s: %v", name, err)
	}
	return err == nil
}

// Lines joins lines into file text, each terminated by a newline.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Resolver returns a directory resolver that ignores the process
// environment: the user scope lives in userDir and the system scope in
// systemDir.
func Resolver(userDir, systemDir string) paths.Resolver {
	return paths.Resolver{
		Getenv: func(key string) string {
			switch key {
			case paths.EnvConfigHome:
				return userDir
			case paths.EnvSystemConfigHome:
				return systemDir
			}
			return ""
		},
		UserConfigDir: func() (string, error) { return "", errors.New("no user config directory in tests") },
	}
}
