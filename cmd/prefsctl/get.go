package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <vendor> <application> <key>",
		Short: "Print the value of an entry",
		Long: `The get command prints the stored text of one entry. The key may
address an entry in a group with '/'.

Example:
  prefsctl get acme.test demo window/width
  prefsctl get acme.test demo title --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args)
		},
	}
}

func runGet(w io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	defer p.Close()

	key := args[2]
	value, ok := p.GetString(key, "")
	if !ok {
		return fmt.Errorf("entry %q not found in %s", key, describe(p.Filename()))
	}

	if jsonOut {
		return printJSON(w, map[string]string{"key": key, "value": value})
	}
	_, err = fmt.Fprintln(w, value)
	return err
}

// describe names a preferences file in messages.
func describe(file string) string {
	if file == "" {
		return "memory preferences"
	}
	return file
}
