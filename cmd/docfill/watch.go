package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-docfill/pkg/fsio"
	"github.com/goliatone/go-docfill/pkg/render"
	"github.com/goliatone/go-docfill/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <template>",
	Short: "Re-render the document whenever the template or values files change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	addSyntaxFlags(watchCmd)
	addSubstitutionFlags(watchCmd)
	watchCmd.Flags().String("mode", "partial", "coverage mode: strict or partial")
	watchCmd.Flags().String("out", "", "output file (required)")
	watchCmd.Flags().Bool("generic-required", false, "treat generic markers as required keys")
	watchCmd.Flags().Duration("debounce", 200*time.Millisecond, "delay before re-rendering after a change")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		return errors.New("watch requires --out")
	}

	syntax, err := buildSyntax(cmd)
	if err != nil {
		return err
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := render.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	genericRequired, _ := cmd.Flags().GetBool("generic-required")
	opts := []render.Option{render.WithSyntax(syntax)}
	if genericRequired {
		opts = append(opts, render.WithGenericRequired())
	}

	templatePath := args[0]
	valuesFiles, _ := cmd.Flags().GetStringArray("values")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	// Substitutions are re-read every pass so values file edits take effect.
	renderOnce := func(context.Context) error {
		tpl, err := fsio.ReadTemplate(templatePath)
		if err != nil {
			return err
		}
		substitutions, err := buildSubstitutions(cmd)
		if err != nil {
			return err
		}
		result, err := render.Render(tpl, substitutions, mode, opts...)
		if err != nil {
			return err
		}
		for _, key := range result.Unresolved {
			logger.Warn("unresolved placeholder", "key", key)
		}
		return fsio.WriteDocument(outPath, result.Output)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, watch.Config{
		TemplatePath: templatePath,
		ValuesPaths:  valuesFiles,
		Debounce:     debounce,
		Logger:       logger,
	}, renderOnce)
}
