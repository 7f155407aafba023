package prefs

import (
	"log/slog"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/internal/numfmt"
	"github.com/joshuapare/prefkit/internal/paths"
	"github.com/joshuapare/prefkit/internal/writer"
	"github.com/joshuapare/prefkit/pkg/types"
	"github.com/joshuapare/prefkit/store"
)

// Env holds the state shared by every handle opened through it: where files
// live, who may touch them, the numeric locale and the handle ID registry.
// Tests create their own Env instead of relying on the process default.
type Env struct {
	// Fs holds the preferences files.
	Fs afero.Fs

	// Locale is the numeric locale used for float text.
	Locale *numfmt.State

	// Dirs resolves scope directories.
	Dirs paths.Resolver

	// Access is the file access policy applied when a file is opened.
	Access types.Access

	// Sync selects write durability.
	Sync writer.SyncMode

	// Logger receives diagnostics. Nil means logger.L at the time of use.
	Logger *slog.Logger

	mu     sync.Mutex
	nextID ID
	ids    map[ID]*store.Node
}

// NewEnv creates an Env on fs with full access, the locale from the
// process environment and the default directory resolver.
func NewEnv(fs afero.Fs) *Env {
	return &Env{
		Fs:     fs,
		Locale: numfmt.FromEnvironment(),
		Dirs:   paths.Default,
		Access: types.AccessAll,
	}
}

var defaultEnv = sync.OnceValue(func() *Env {
	return NewEnv(afero.NewOsFs())
})

// DefaultEnv returns the process Env used when no WithEnv option is given.
func DefaultEnv() *Env { return defaultEnv() }

// SetAccess replaces the file access policy. Already open files keep the
// policy they were opened with.
func (e *Env) SetAccess(a types.Access) {
	e.mu.Lock()
	e.Access = a
	e.mu.Unlock()
}

func (e *Env) access() types.Access {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Access
}

func (e *Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logger.L
}

func (e *Env) locale() *numfmt.State {
	if e.Locale == nil {
		e.Locale = numfmt.NewState(language.Und)
	}
	return e.Locale
}

// Option configures a constructor.
type Option func(*config)

type config struct {
	env  *Env
	sync *writer.SyncMode
}

// WithEnv opens the handle in env instead of DefaultEnv().
func WithEnv(env *Env) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithSync overrides the write durability of the Env for this file.
func WithSync(mode writer.SyncMode) Option {
	return func(c *config) {
		c.sync = &mode
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.env == nil {
		c.env = DefaultEnv()
	}
	return c
}
