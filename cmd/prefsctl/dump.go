package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/internal/export"
)

var exportFormat string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatJSON), "Output format: json, yaml or toml")
	rootCmd.AddCommand(newDumpCmd(), cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <vendor> <application>",
		Short: "Print the file as it would be saved",
		Long: `The dump command prints the preferences text of a file, including
comments, exactly as the next save would write it.

Example:
  prefsctl dump acme.test demo`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), args)
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <vendor> <application>",
		Short: "Export the tree as JSON, YAML or TOML",
		Long: `The export command renders all groups and entries as nested objects.
Comments are not exported.

Example:
  prefsctl export acme.test demo
  prefsctl export acme.test demo --format yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), args)
		},
	}
}

func runDump(w io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	defer p.Close()

	data, err := p.RootNode().Serialize()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runExport(w io.Writer, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	defer p.Close()

	return export.Render(w, p.Node(), format)
}
