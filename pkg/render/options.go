package render

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docfill/pkg/placeholder"
)

type config struct {
	syntax          placeholder.Syntax
	genericRequired bool
	sanitizer       *bluemonday.Policy
}

// Option customises a single render call.
type Option func(*config)

// WithSyntax overrides the default brace syntax. The zero-value Syntax is
// rejected by the scanner, so callers must pass a validated one.
func WithSyntax(syntax placeholder.Syntax) Option {
	return func(cfg *config) {
		cfg.syntax = syntax
	}
}

// WithGenericRequired treats generic markers like keyed placeholders: strict
// renders fail on them and partial renders report them as unresolved. Use
// this as a "no unresolved holes" gate before publishing a document.
func WithGenericRequired() Option {
	return func(cfg *config) {
		cfg.genericRequired = true
	}
}

// WithSanitizer runs every substitution value through the given bluemonday
// policy before it is emitted. Intended for templates destined to be rendered
// as HTML, where caller-supplied values must not smuggle in markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.sanitizer = policy
	}
}

func newConfig(opts []Option) config {
	cfg := config{syntax: placeholder.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
