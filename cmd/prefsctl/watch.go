package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/internal/writer"
	"github.com/joshuapare/prefkit/store"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <vendor> <application>",
		Short: "Print changes to a preferences file as they happen",
		Long: `The watch command follows a preferences file and prints what changed
every time it is saved, until interrupted.

Example:
  prefsctl watch acme.test demo`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), args)
		},
	}
}

func runWatch(ctx context.Context, w io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	file := p.Filename()
	if err := p.Close(); err != nil {
		return err
	}
	if file == "" {
		return fmt.Errorf("%s cannot be watched", describe(file))
	}

	dirName := filepath.Dir(file)
	if err := env.Fs.MkdirAll(dirName, writer.DirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dirName, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fsw.Close()
	// Saves replace the file by rename, so the directory is watched.
	if err := fsw.Add(dirName); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dirName, err)
	}

	fmt.Fprintf(w, "watching %s\n", file)
	return watchLoop(ctx, w, file, fsw.Events, fsw.Errors)
}

// watchLoop prints the difference between consecutive versions of file each
// time an event for it arrives.
func watchLoop(ctx context.Context, w io.Writer, file string, events <-chan fsnotify.Event, errs <-chan error) error {
	prev, _ := loadFile(file)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "file", file, "error", err)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(file) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			next, err := loadFile(file)
			if err != nil {
				logger.Warn("cannot reload preferences", "file", file, "error", err)
				continue
			}
			if err := printChanges(w, store.Diff(prev.Top(), next.Top())); err != nil {
				return err
			}
			prev = next
		}
	}
}
