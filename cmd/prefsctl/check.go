package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var checkFormat string

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVarP(&checkFormat, "format", "f", "text",
		"Output format: text, json or compact (one line per issue)")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report malformed lines in a preferences file",
		Long: `The check command reads a preferences file and lists every line that
cannot be parsed. Such lines are skipped when the file is loaded and are
lost on the next save.

The command fails when any issue is found.`,
		Example: `  # Human-readable report
  prefsctl check ~/.config/acme.test/demo.prefs

  # Compact format for grep
  prefsctl check --format compact demo.prefs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args)
		},
	}
}

func runCheck(w io.Writer, args []string) error {
	r, err := loadFile(args[0])
	if err != nil {
		return err
	}
	report := r.Diagnostics()

	var output string
	switch checkFormat {
	case "json":
		if output, err = report.FormatJSON(); err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		output += "\n"
	case "compact":
		output = report.FormatTextCompact()
	case "text":
		output = report.FormatText()
	default:
		return fmt.Errorf("unknown format: %s (use: text, json, compact)", checkFormat)
	}
	if _, err := io.WriteString(w, output); err != nil {
		return err
	}

	if report.HasAnyIssues() {
		return fmt.Errorf("%d malformed line(s) in %s", report.Len(), args[0])
	}
	return nil
}
