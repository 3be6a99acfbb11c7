package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunoga/deepcmp"
)

type compareFlags struct {
	setOrder     bool
	mapOrder     bool
	looseNumbers bool
	ignore       []string
	json         bool
}

// result is the --json output.
type result struct {
	Equal   bool   `json:"equal"`
	Path    string `json:"path,omitempty"`
	Pointer string `json:"pointer,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func newRootCmd() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "deepcmp [flags] LEFT RIGHT",
		Short: "Compare two JSON or YAML documents structurally",
		Long: `Compare two documents and report the first point at which they diverge.

Files ending in .json are decoded as JSON, everything else (including "-"
for stdin) as YAML. Numbers are decoded as float64 in both formats. YAML
!!set mappings are compared as sets, without order unless --set-order is
given. With --map-order, mappings keep their document order and objects with
the same keys in a different order differ.

Examples:
  deepcmp before.json after.json
  deepcmp --ignore /metadata/generation live.yaml desired.yaml
  kubectl get cm app -o json | deepcmp --json - app.json

Exit Codes:
  0 = Documents are equal
  1 = Documents differ
  2 = Error (bad arguments, unreadable or invalid input)`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.setOrder, "set-order", false,
		"Compare the elements of YAML !!set mappings in order")
	cmd.Flags().BoolVar(&flags.mapOrder, "map-order", false,
		"Compare mapping keys in document order")
	cmd.Flags().BoolVar(&flags.looseNumbers, "loose-numbers", false,
		"Ignore the sign of zero and compare numbers across types")
	cmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil,
		"Skip the subtree at this path (repeatable, e.g. /a/0 or a[0])")
	cmd.Flags().BoolVar(&flags.json, "json", false,
		"Output the result as JSON")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, flags compareFlags) error {
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("stdin can only be read once")
	}

	dopts := decodeOptions{ordered: flags.mapOrder}
	left, err := readDocument(cmd.InOrStdin(), args[0], dopts)
	if err != nil {
		return err
	}
	right, err := readDocument(cmd.InOrStdin(), args[1], dopts)
	if err != nil {
		return err
	}

	opts := []deepcmp.CloneOption{
		deepcmp.CompareSetOrder(flags.setOrder),
		deepcmp.CompareMapOrder(flags.mapOrder),
		deepcmp.StrictNumbers(!flags.looseNumbers),
	}
	for _, p := range flags.ignore {
		opts = append(opts, deepcmp.IgnorePath(p))
	}

	m := deepcmp.DeepCompare(left, right, deepcmp.Equality, opts...)

	if flags.json {
		res := result{Equal: m == nil}
		if m != nil {
			res.Path = m.Path.String()
			res.Pointer = m.Path.Pointer()
			res.Reason = m.Reason.String()
			res.Detail = m.Detail
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	} else if m != nil {
		if m.Detail != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", m.Path, m.Reason, m.Detail)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.Path, m.Reason)
		}
	}

	if m != nil {
		return errDifferent
	}
	return nil
}
