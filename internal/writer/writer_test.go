package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := &FileWriter{Fs: fs, Path: "/cfg/acme/demo.prefs", Sync: SyncNone}

	require.NoError(t, w.WritePrefs([]byte("first")))
	require.NoError(t, w.WritePrefs([]byte("second")))

	data, err := afero.ReadFile(fs, w.Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// No temp files are left behind.
	entries, err := afero.ReadDir(fs, "/cfg/acme")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo.prefs", entries[0].Name())
}

func TestFileWriter_OsFsFullSync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vendor", "app.prefs")
	w := &FileWriter{Path: path, Sync: SyncFull}

	require.NoError(t, w.WritePrefs([]byte("[.]\nk:v\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[.]\nk:v\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FilePerm, info.Mode().Perm())
}

func TestFileWriter_FailureKeepsTarget(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/cfg/app.prefs", []byte("original"), 0o644))

	w := &FileWriter{Fs: afero.NewReadOnlyFs(base), Path: "/cfg/app.prefs", Sync: SyncNone}
	require.Error(t, w.WritePrefs([]byte("replacement")))

	data, err := afero.ReadFile(base, "/cfg/app.prefs")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestMemWriter(t *testing.T) {
	var w MemWriter
	buf := []byte("abc")
	require.NoError(t, w.WritePrefs(buf))
	buf[0] = 'x'
	assert.Equal(t, "abc", string(w.Buf))
	assert.Equal(t, 1, w.Writes)
}
