// Package paths resolves where preferences files live for each scope.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joshuapare/prefkit/pkg/types"
)

// Environment overrides.
const (
	EnvConfigHome       = "PREFKIT_CONFIG_HOME"
	EnvSystemConfigHome = "PREFKIT_SYSTEM_CONFIG_DIR"
)

// Extension is the preferences file extension.
const Extension = ".prefs"

// unknown replaces an empty vendor or application name.
const unknown = "unknown"

// Resolver maps scopes to directories. The zero value uses the process
// environment and the running platform.
type Resolver struct {
	Getenv        func(string) string
	UserConfigDir func() (string, error)
	GOOS          string
}

// Default is the process resolver.
var Default = Resolver{}

func (r Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func (r Resolver) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	return runtime.GOOS
}

// Dir returns the base directory for scope. MEMORY has none.
func (r Resolver) Dir(scope types.Root) (string, error) {
	switch scope.Scope() {
	case types.User:
		if dir := r.getenv(EnvConfigHome); dir != "" {
			return dir, nil
		}
		userDir := r.UserConfigDir
		if userDir == nil {
			userDir = os.UserConfigDir
		}
		dir, err := userDir()
		if err != nil {
			return "", types.IOError("resolve user config directory", err)
		}
		return dir, nil
	case types.System:
		if dir := r.getenv(EnvSystemConfigHome); dir != "" {
			return dir, nil
		}
		return r.systemDir(), nil
	default:
		return "", &types.Error{Kind: types.ErrKindNotFound, Msg: "scope " + scope.String() + " has no directory"}
	}
}

func (r Resolver) systemDir() string {
	switch r.goos() {
	case "darwin":
		return "/Library/Preferences"
	case "windows":
		if dir := r.getenv("ProgramData"); dir != "" {
			return dir
		}
		return `C:\ProgramData`
	default:
		return "/etc/xdg"
	}
}

// File returns the scope file for vendor and application below dir.
func File(dir, vendor, application string) string {
	return filepath.Join(dir, cleanName(vendor), cleanName(application)+Extension)
}

// Userdata returns the per-application data directory that sits next to a
// preferences file: "dir/vendor/application.prefs" maps to
// "dir/vendor/application/".
func Userdata(file string) string {
	return strings.TrimSuffix(file, Extension) + string(filepath.Separator)
}

// cleanName keeps vendor and application names to one path element.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return unknown
	}
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, name)
}
