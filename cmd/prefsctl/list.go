package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/pkg/prefs"
)

func init() {
	rootCmd.AddCommand(newGroupsCmd(), newEntriesCmd())
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups <vendor> <application> [path]",
		Short: "List the groups below a path",
		Long: `The groups command lists the direct child groups of a group, in file
order. Without path the top of the file is listed.

Example:
  prefsctl groups acme.test demo
  prefsctl groups acme.test demo window --json`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(cmd.OutOrStdout(), args)
		},
	}
}

func newEntriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <vendor> <application> [path]",
		Short: "List the entries of a group",
		Long: `The entries command prints the entries of one group as name=value
lines, in file order.

Example:
  prefsctl entries acme.test demo window`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntries(cmd.OutOrStdout(), args)
		},
	}
}

// withGroup opens the file and calls fn with a handle on the group named by
// the optional third argument. Missing groups are an error, not created.
func withGroup(args []string, fn func(g *prefs.Preferences) error) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	defer p.Close()

	path := "."
	if len(args) > 2 {
		path = args[2]
	}
	if !p.GroupExists(path) {
		return fmt.Errorf("group %q not found in %s", path, describe(p.Filename()))
	}
	g := prefs.Group(p, path)
	defer g.Close()
	return fn(g)
}

func runGroups(w io.Writer, args []string) error {
	return withGroup(args, func(g *prefs.Preferences) error {
		names := g.GroupNames()
		if jsonOut {
			if names == nil {
				names = []string{}
			}
			return printJSON(w, names)
		}
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	})
}

type jsonEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func runEntries(w io.Writer, args []string) error {
	return withGroup(args, func(g *prefs.Preferences) error {
		entries := make([]jsonEntry, 0, g.Entries())
		for _, name := range g.EntryNames() {
			value, _ := g.GetString(name, "")
			entries = append(entries, jsonEntry{Name: name, Value: value})
		}
		if jsonOut {
			return printJSON(w, entries)
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s=%q\n", e.Name, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
