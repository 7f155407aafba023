package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/pkg/prefs"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "string", "Value type: string, int, float, double, bool or hex")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <vendor> <application> <key> <value>",
		Short: "Store a value",
		Long: `The set command stores one entry and saves the file. Missing groups
on the key path are created.

Example:
  prefsctl set acme.test demo window/width 800 --type int
  prefsctl set acme.test demo scale 1.25 --type double --c-locale
  prefsctl set acme.test demo blob 00ff10 --type hex`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.OutOrStdout(), args)
		},
	}
}

func runSet(w io.Writer, args []string) error {
	p, err := openPrefs(args[0], args[1])
	if err != nil {
		return err
	}
	key, text := args[2], args[3]
	file := p.Filename()

	err = setTyped(p, key, text)
	if cerr := p.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return err
	}
	logger.Info("entry saved", "file", file, "key", key, "type", setType)
	if jsonOut {
		return printJSON(w, map[string]string{"key": key, "value": text, "type": setType})
	}
	return nil
}

func setTyped(p *prefs.Preferences, key, text string) error {
	var ok bool
	switch setType {
	case "string", "":
		ok = p.SetString(key, text)
	case "int":
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int %q: %w", text, err)
		}
		ok = p.SetInt64(key, v)
	case "float":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", text, err)
		}
		ok = p.SetFloat32(key, float32(v))
	case "double":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("invalid double %q: %w", text, err)
		}
		ok = p.SetFloat64(key, v)
	case "bool":
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", text, err)
		}
		ok = p.SetBool(key, v)
	case "hex":
		v, err := hex.DecodeString(text)
		if err != nil {
			return fmt.Errorf("invalid hex %q: %w", text, err)
		}
		ok = p.SetBytes(key, v)
	default:
		return fmt.Errorf("unknown type %q", setType)
	}
	if !ok {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
