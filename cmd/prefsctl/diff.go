package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/pkg/types"
	"github.com/joshuapare/prefkit/store"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two preferences files",
		Long: `The diff command lists the groups and entries that were added, removed
or modified between two preferences files. Comments are ignored.

Example:
  prefsctl diff demo.prefs demo.prefs.bak
  prefsctl diff old.prefs new.prefs --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), args)
		},
	}
}

// loadFile reads a preferences file outside of any vendor/application
// layout.
func loadFile(name string) (*store.RootNode, error) {
	return store.Open(store.Options{
		Fs:          env.Fs,
		Filename:    name,
		Root:        types.User,
		ReadAllowed: true,
		Logger:      env.Logger,
	})
}

func runDiff(w io.Writer, args []string) error {
	a, err := loadFile(args[0])
	if err != nil {
		return err
	}
	b, err := loadFile(args[1])
	if err != nil {
		return err
	}
	return printChanges(w, store.Diff(a.Top(), b.Top()))
}

type jsonChange struct {
	Status   string `json:"status"`
	Path     string `json:"path"`
	Group    bool   `json:"group,omitempty"`
	Entry    string `json:"entry,omitempty"`
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}

func printChanges(w io.Writer, changes []store.Change) error {
	if jsonOut {
		out := make([]jsonChange, 0, len(changes))
		for _, c := range changes {
			out = append(out, jsonChange{
				Status:   c.Status.String(),
				Path:     c.Path,
				Group:    c.Group,
				Entry:    c.Entry,
				OldValue: c.OldValue,
				NewValue: c.NewValue,
			})
		}
		return printJSON(w, out)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, formatChange(c)); err != nil {
			return err
		}
	}
	return nil
}

func formatChange(c store.Change) string {
	if c.Group {
		switch c.Status {
		case store.DiffAdded:
			return fmt.Sprintf("+ [%s]", c.Path)
		default:
			return fmt.Sprintf("- [%s]", c.Path)
		}
	}
	key := c.Entry
	if c.Path != store.TopPath {
		key = c.Path + store.PathSeparator + c.Entry
	}
	switch c.Status {
	case store.DiffAdded:
		return fmt.Sprintf("+ %s = %q", key, c.NewValue)
	case store.DiffRemoved:
		return fmt.Sprintf("- %s = %q", key, c.OldValue)
	default:
		return fmt.Sprintf("~ %s: %q -> %q", key, c.OldValue, c.NewValue)
	}
}
