package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/pkg/prefs"
)

func init() {
	rootCmd.AddCommand(newPathCmd(), newUUIDCmd())
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <vendor> <application>",
		Short: "Print the preferences file and userdata directory",
		Long: `The path command prints where the preferences of an application are
stored, and its userdata directory (created if missing).

Example:
  prefsctl path acme.test demo
  prefsctl path acme.test demo --scope system`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd.OutOrStdout(), args)
		},
	}
}

func newUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a new random UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUUID(cmd.OutOrStdout(), args)
		},
	}
}

func runPath(w io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	defer p.Close()

	file := p.Filename()
	if file == "" {
		return fmt.Errorf("%s has no file", describe(file))
	}
	userdata, err := p.UserdataPath()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(w, map[string]string{"file": file, "userdata": userdata})
	}
	_, err = fmt.Fprintf(w, "file:     %s\nuserdata: %s\n", file, userdata)
	return err
}

func runUUID(w io.Writer, _ []string) error {
	_, err := fmt.Fprintln(w, prefs.NewUUID())
	return err
}
