package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/pkg/prefs"
	"github.com/joshuapare/prefkit/pkg/types"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
	cLocale bool
	scope   string
	dir     string
	logDir  string

	// env is where every command opens preferences. Tests replace it.
	env = prefs.DefaultEnv()
)

var rootCmd = &cobra.Command{
	Use:   "prefsctl",
	Short: "Inspect and edit application preferences files",
	Long: `prefsctl reads and writes the hierarchical preferences files that
applications store per vendor and application in the user or system
configuration directory.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&cLocale, "c-locale", false, "Use '.' as decimal point for floats")
	rootCmd.PersistentFlags().StringVar(&scope, "scope", "user", "Preferences scope: user, system or memory")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Explicit base directory (overrides --scope)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to dated files in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a failed command's error and records it in the log.
func reportError(w io.Writer, err error) {
	logger.Error("command failed", "args", os.Args[1:], "error", err)
	fmt.Fprintln(w, "Error:", err)
}

func initLogging(stderr io.Writer) error {
	switch {
	case verbose:
		return logger.Init(logger.Options{Enabled: true, Output: stderr, Level: slog.LevelDebug})
	case logDir != "":
		return logger.Init(logger.Options{Enabled: true, LogDir: logDir, Level: slog.LevelDebug})
	}
	return nil
}

// parseScope converts the --scope and --c-locale flags to a types.Root.
func parseScope() (types.Root, error) {
	var root types.Root
	switch strings.ToLower(scope) {
	case "user", "":
		root = types.User
	case "system":
		root = types.System
	case "memory":
		root = types.Memory
	default:
		return 0, fmt.Errorf("unknown scope %q (want user, system or memory)", scope)
	}
	if cLocale {
		root |= types.CLocale
	}
	return root, nil
}

// openPrefs opens the preferences of vendor/application as selected by the
// global flags.
func openPrefs(vendor, application string) (*prefs.Preferences, error) {
	root, err := parseScope()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening preferences", "vendor", vendor, "application", application, "scope", root.String())
	if dir != "" {
		return prefs.NewAt(dir, vendor, application, root, prefs.WithEnv(env)), nil
	}
	return prefs.New(root, vendor, application, prefs.WithEnv(env)), nil
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
