// Package docfill instantiates parameterized documentation templates:
// {PROJECT}-style keyed placeholders are replaced from a substitution map,
// {tbd}-style generic markers signal values still to be decided, and the
// renderer enforces coverage according to the selected mode.
package docfill

import (
	"github.com/goliatone/go-docfill/pkg/fsio"
	"github.com/goliatone/go-docfill/pkg/placeholder"
	"github.com/goliatone/go-docfill/pkg/render"
	"github.com/goliatone/go-docfill/pkg/template"
)

// Mode selects strict or partial coverage; see render.Mode.
type Mode = render.Mode

const (
	ModeStrict  = render.ModeStrict
	ModePartial = render.ModePartial
)

// Result is the rendered document plus diagnostics.
type Result = render.Result

// Option customises a render call.
type Option = render.Option

// Syntax describes the placeholder notation; placeholder.Default() is the
// brace convention used by the stock documentation templates.
type Syntax = placeholder.Syntax

// Report summarises the placeholders a template contains.
type Report = placeholder.Report

// WithSyntax overrides the default brace syntax.
func WithSyntax(syntax Syntax) Option {
	return render.WithSyntax(syntax)
}

// WithGenericRequired subjects generic markers to coverage checking.
func WithGenericRequired() Option {
	return render.WithGenericRequired()
}

// RenderString fills in-memory template content. It is the simplest entry
// point for callers embedding docfill in another tool.
func RenderString(content string, substitutions map[string]string, mode Mode, opts ...Option) (Result, error) {
	tpl, err := template.FromString(content)
	if err != nil {
		return Result{}, err
	}
	return render.Render(tpl, substitutions, mode, opts...)
}

// RenderFile loads a template from disk and fills it.
func RenderFile(path string, substitutions map[string]string, mode Mode, opts ...Option) (Result, error) {
	tpl, err := fsio.ReadTemplate(path)
	if err != nil {
		return Result{}, err
	}
	return render.Render(tpl, substitutions, mode, opts...)
}

// ScanString reports the distinct keyed placeholders and generic-marker count
// in the given content under the default syntax.
func ScanString(content string) (Report, error) {
	return placeholder.Scan(content, placeholder.Default())
}
