package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/joshuapare/prefkit/internal/export"
	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/internal/numfmt"
	"github.com/joshuapare/prefkit/internal/testutil"
	"github.com/joshuapare/prefkit/pkg/prefs"
)

const testConfigHome = "/cfg"

// setupTest points every command at an in-memory filesystem and resets the
// global flags.
func setupTest(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	e := prefs.NewEnv(fs)
	e.Locale = numfmt.NewState(language.English)
	e.Dirs = testutil.Resolver(testConfigHome, "")

	saved := env
	env = e
	t.Cleanup(func() { env = saved })

	verbose = false
	jsonOut = false
	cLocale = false
	scope = "user"
	dir = ""
	logDir = ""
	setType = "string"
	deleteGroup = false
	exportFormat = string(export.FormatJSON)
	checkFormat = "text"
	return fs
}

// run calls a command function and returns its output.
func run(t *testing.T, fn func(w *bytes.Buffer) error) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := fn(&buf)
	return buf.String(), err
}

// mustSet stores key with the given type.
func mustSet(t *testing.T, typ string, args ...string) {
	t.Helper()
	saved := setType
	setType = typ
	defer func() { setType = saved }()
	if err := runSet(&bytes.Buffer{}, args); err != nil {
		t.Fatalf("set %v: %v", args, err)
	}
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// captureLog routes the process logger into a buffer for the rest of the
// test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := logger.L
	logger.L = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	t.Cleanup(func() { logger.L = saved })
	return &buf
}
