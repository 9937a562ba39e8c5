package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docfill/pkg/fsio"
	"github.com/goliatone/go-docfill/pkg/placeholder"
)

var scanCmd = &cobra.Command{
	Use:   "scan <template>",
	Short: "List the placeholders a template contains",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	addSyntaxFlags(scanCmd)
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	tpl, err := fsio.ReadTemplate(args[0])
	if err != nil {
		return err
	}

	syntax, err := buildSyntax(cmd)
	if err != nil {
		return err
	}

	report, err := placeholder.Scan(tpl.Content(), syntax)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range report.Keys {
		fmt.Fprintln(out, key)
	}
	if report.Generic > 0 {
		fmt.Fprintf(out, "# %d generic marker(s)\n", report.Generic)
	}
	return nil
}
