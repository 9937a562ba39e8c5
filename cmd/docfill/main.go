package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docfill/pkg/placeholder"
	"github.com/goliatone/go-docfill/pkg/prompt"
	"github.com/goliatone/go-docfill/pkg/render"
)

// Exit codes are distinct per error class so scripts can branch on the
// failure kind without parsing stderr.
const (
	exitFailure       = 1
	exitMalformed     = 2
	exitMissingKey    = 3
	exitEmptyValue    = 4
	exitPromptAborted = 130
)

var rootCmd = &cobra.Command{
	Use:   "docfill",
	Short: "Fill parameterized documentation templates",
	Long: `docfill instantiates parameterized documentation templates.

Templates contain keyed placeholders like {PROJECT} and generic {tbd}
markers. docfill scans templates for the values they need, fills them from
--set flags, YAML values files, .env files, or the environment, and writes
the resolved document with atomic replace semantics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "docfill: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var malformed *placeholder.MalformedError
	var missing *render.MissingKeyError
	var empty *render.EmptyValueError
	switch {
	case errors.As(err, &malformed):
		return exitMalformed
	case errors.As(err, &missing):
		return exitMissingKey
	case errors.As(err, &empty):
		return exitEmptyValue
	case errors.Is(err, prompt.ErrAborted):
		return exitPromptAborted
	}
	return exitFailure
}
