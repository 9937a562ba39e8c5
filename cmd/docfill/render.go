package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docfill/pkg/fsio"
	"github.com/goliatone/go-docfill/pkg/placeholder"
	"github.com/goliatone/go-docfill/pkg/prompt"
	"github.com/goliatone/go-docfill/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template with the supplied substitutions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	addSyntaxFlags(renderCmd)
	addSubstitutionFlags(renderCmd)
	renderCmd.Flags().String("mode", "strict", "coverage mode: strict or partial")
	renderCmd.Flags().String("out", "", "output file (stdout if empty)")
	renderCmd.Flags().Bool("interactive", false, "prompt for unresolved keys before rendering")
	renderCmd.Flags().Bool("generic-required", false, "treat generic markers as required keys")
	renderCmd.Flags().Bool("sanitize", false, "strip markup from substitution values")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	tpl, err := fsio.ReadTemplate(args[0])
	if err != nil {
		return err
	}

	syntax, err := buildSyntax(cmd)
	if err != nil {
		return err
	}

	substitutions, err := buildSubstitutions(cmd)
	if err != nil {
		return err
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := render.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	genericRequired, _ := cmd.Flags().GetBool("generic-required")
	sanitize, _ := cmd.Flags().GetBool("sanitize")

	opts := []render.Option{render.WithSyntax(syntax)}
	if genericRequired {
		opts = append(opts, render.WithGenericRequired())
	}
	if sanitize {
		opts = append(opts, render.WithSanitizer(render.ValuePolicy()))
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		filled, err := fillMissing(cmd, tpl.Content(), syntax, substitutions, genericRequired)
		if err != nil {
			return err
		}
		for key, value := range filled {
			substitutions[key] = value
		}
	}

	result, err := render.Render(tpl, substitutions, mode, opts...)
	if err != nil {
		return err
	}

	for _, key := range result.Unresolved {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unresolved placeholder %q\n", key)
	}
	for _, note := range result.Notes {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note.Message)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(result.Output)
		return err
	}
	if err := fsio.WriteDocument(outPath, result.Output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	return nil
}

// fillMissing prompts for keys the substitution map does not cover yet. With
// genericRequired the markers are scanned as ordinary keys so they get
// prompted for too.
func fillMissing(cmd *cobra.Command, content string, syntax placeholder.Syntax, substitutions map[string]string, genericRequired bool) (map[string]string, error) {
	scanSyntax := syntax
	if genericRequired {
		scanSyntax.Generic = nil
	}
	report, err := placeholder.Scan(content, scanSyntax)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range report.Keys {
		if _, ok := substitutions[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d placeholder(s) need values\n", len(missing))
	return prompt.Fill(cmd.Context(), prompt.NewSurveyDriver(), missing)
}
