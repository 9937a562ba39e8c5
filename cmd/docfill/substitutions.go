package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-docfill/pkg/manifest"
	"github.com/goliatone/go-docfill/pkg/placeholder"
)

func addSyntaxFlags(cmd *cobra.Command) {
	cmd.Flags().String("open", "{", "placeholder opening delimiter")
	cmd.Flags().String("close", "}", "placeholder closing delimiter")
	cmd.Flags().StringSlice("generic", []string{"tbd"}, "generic marker names exempt from coverage")
}

func buildSyntax(cmd *cobra.Command) (placeholder.Syntax, error) {
	open, _ := cmd.Flags().GetString("open")
	closeDelim, _ := cmd.Flags().GetString("close")
	generic, _ := cmd.Flags().GetStringSlice("generic")

	syntax := placeholder.Syntax{Open: open, Close: closeDelim, Generic: generic}
	if err := syntax.Validate(); err != nil {
		return placeholder.Syntax{}, err
	}
	return syntax, nil
}

func addSubstitutionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("values", nil, "YAML values file (repeatable, later files win)")
	cmd.Flags().String("env-file", "", "load substitutions from a .env file")
	cmd.Flags().String("env-prefix", "", "collect environment variables with this prefix, e.g. DOCFILL_")
	cmd.Flags().StringArray("set", nil, "substitution as key=value (repeatable, wins over files)")
}

// buildSubstitutions layers the sources lowest to highest precedence:
// values files, .env file, environment, then explicit --set flags.
func buildSubstitutions(cmd *cobra.Command) (map[string]string, error) {
	valuesFiles, _ := cmd.Flags().GetStringArray("values")
	envFile, _ := cmd.Flags().GetString("env-file")
	envPrefix, _ := cmd.Flags().GetString("env-prefix")
	pairs, _ := cmd.Flags().GetStringArray("set")

	var layers []map[string]string

	for _, path := range valuesFiles {
		values, err := manifest.LoadYAML(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, values)
	}

	if envFile != "" {
		values, err := manifest.LoadDotEnv(envFile, false)
		if err != nil {
			return nil, err
		}
		layers = append(layers, values)
	}

	if envPrefix != "" {
		layers = append(layers, manifest.FromEnv(envPrefix))
	}

	flagValues, err := manifest.FromPairs(pairs)
	if err != nil {
		return nil, err
	}
	layers = append(layers, flagValues)

	return manifest.Merge(layers...), nil
}
