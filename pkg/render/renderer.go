package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-docfill/pkg/placeholder"
	"github.com/goliatone/go-docfill/pkg/template"
)

// Note is an informational diagnostic attached to a successful render.
type Note struct {
	Key     string
	Message string
}

// Result is the output of one render call. Output is a fresh value; the
// input template is never mutated.
type Result struct {
	Output []byte
	// Unresolved lists keyed placeholders left verbatim by a partial render,
	// deduplicated, in first-appearance order. Always nil in strict mode.
	Unresolved []string
	// Notes carries informational diagnostics, e.g. substitution values that
	// themselves contain placeholder-like syntax.
	Notes []Note
}

// Render applies the substitution map to the template in a single
// left-to-right pass. It is pure: identical inputs always produce
// byte-identical results, non-placeholder text is preserved exactly, and
// substituted values are never re-scanned, so a value containing placeholder
// syntax survives verbatim rather than expanding.
//
// Keyed placeholders with a mapping are always replaced. Generic markers
// (Syntax.Generic) are replaced when a mapping exists and otherwise left in
// the output as explicit "unresolved" markers; WithGenericRequired makes
// them subject to the same coverage rules as keyed placeholders.
//
// The substitution map is validated before any output is produced, so an
// EmptyValueError never leaves partial output behind.
func Render(tpl template.Template, substitutions map[string]string, mode Mode, opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	values, err := validateSubstitutions(substitutions, cfg)
	if err != nil {
		return Result{}, err
	}

	tokens, err := placeholder.Tokenize(tpl.Content(), cfg.syntax)
	if err != nil {
		return Result{}, err
	}

	var out bytes.Buffer
	out.Grow(len(tpl.Content()))

	var result Result
	unresolved := make(map[string]struct{})
	noted := make(map[string]struct{})

	for _, tok := range tokens {
		if tok.Kind == placeholder.TokenLiteral {
			out.WriteString(tok.Text)
			continue
		}

		value, mapped := values[tok.Key]
		generic := cfg.syntax.IsGeneric(tok.Key)

		switch {
		case mapped:
			out.WriteString(value)
			if _, seen := noted[tok.Key]; !seen && strings.Contains(value, cfg.syntax.Open) {
				noted[tok.Key] = struct{}{}
				result.Notes = append(result.Notes, Note{
					Key:     tok.Key,
					Message: fmt.Sprintf("value for %q contains placeholder-like syntax and was emitted verbatim", tok.Key),
				})
			}
		case generic && !cfg.genericRequired:
			// Deliberate "decide later" marker; keep it visible.
			out.WriteString(tok.Text)
		case mode == ModeStrict:
			return Result{}, &MissingKeyError{Key: tok.Key}
		default:
			out.WriteString(tok.Text)
			if _, seen := unresolved[tok.Key]; !seen {
				unresolved[tok.Key] = struct{}{}
				result.Unresolved = append(result.Unresolved, tok.Key)
			}
		}
	}

	result.Output = out.Bytes()
	return result, nil
}

// validateSubstitutions rejects empty values and applies the optional
// sanitizer. Keys are checked in sorted order so the reported error is
// deterministic regardless of map iteration.
func validateSubstitutions(substitutions map[string]string, cfg config) (map[string]string, error) {
	if len(substitutions) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(substitutions))
	for key := range substitutions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string]string, len(substitutions))
	for _, key := range keys {
		value := substitutions[key]
		if value == "" {
			return nil, &EmptyValueError{Key: key}
		}
		if cfg.sanitizer != nil {
			value = strings.TrimSpace(cfg.sanitizer.Sanitize(value))
			if value == "" {
				return nil, &EmptyValueError{Key: key}
			}
		}
		values[key] = value
	}
	return values, nil
}
