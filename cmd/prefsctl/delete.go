package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/internal/logger"
)

var deleteGroup bool

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVarP(&deleteGroup, "group", "g", false, "Delete a group and everything below it")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <vendor> <application> <key|group>",
		Short: "Delete an entry or a group",
		Long: `The delete command removes one entry, or with --group a whole group
including its subgroups, and saves the file.

Example:
  prefsctl delete acme.test demo window/width
  prefsctl delete acme.test demo window --group`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.OutOrStdout(), args)
		},
	}
}

func runDelete(_ io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	target := args[2]

	var deleted bool
	if deleteGroup {
		deleted = p.DeleteGroup(target)
	} else {
		deleted = p.DeleteEntry(target)
	}
	file := p.Filename()
	if deleted {
		logger.Info("deleted", "file", file, "target", target, "group", deleteGroup)
	} else {
		err = fmt.Errorf("%q not found in %s", target, describe(file))
	}
	if cerr := p.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return err
}
