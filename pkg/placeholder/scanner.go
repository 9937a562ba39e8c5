package placeholder

import (
	"fmt"
	"strings"
)

// MalformedError reports placeholder syntax the scanner cannot parse. Offset
// is the byte position of the offending sequence in the input.
type MalformedError struct {
	Offset int
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("placeholder: malformed template at byte %d: %s", e.Offset, e.Detail)
}

// TokenKind distinguishes literal runs from placeholders.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenPlaceholder
)

// Token is one segment of a tokenized template. For literals, Text holds the
// run with escapes already collapsed. For placeholders, Text holds the raw
// source text including delimiters (so partial renders can reproduce it
// verbatim) and Key holds the name between them.
type Token struct {
	Kind   TokenKind
	Text   string
	Key    string
	Offset int
}

// Tokenize splits a template into literal and placeholder tokens in a single
// left-to-right pass. Placeholders do not nest and literal bytes are carried
// through untouched, so one pass suffices.
func Tokenize(text string, syntax Syntax) ([]Token, error) {
	if err := syntax.Validate(); err != nil {
		return nil, err
	}

	escOpen := syntax.Open + syntax.Open
	escClose := syntax.Close + syntax.Close

	var tokens []Token
	var lit strings.Builder
	litStart := 0

	flush := func() {
		if lit.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: lit.String(), Offset: litStart})
		lit.Reset()
	}

	i := 0
	for i < len(text) {
		if lit.Len() == 0 {
			litStart = i
		}
		switch {
		case strings.HasPrefix(text[i:], escOpen):
			lit.WriteString(syntax.Open)
			i += len(escOpen)
		case strings.HasPrefix(text[i:], escClose):
			lit.WriteString(syntax.Close)
			i += len(escClose)
		case strings.HasPrefix(text[i:], syntax.Open):
			start := i
			nameStart := i + len(syntax.Open)
			rel := strings.Index(text[nameStart:], syntax.Close)
			if rel < 0 {
				return nil, &MalformedError{Offset: start, Detail: "unterminated placeholder"}
			}
			key := text[nameStart : nameStart+rel]
			if key == "" {
				return nil, &MalformedError{Offset: start, Detail: "empty placeholder name"}
			}
			if !validKey(key) {
				return nil, &MalformedError{Offset: start, Detail: fmt.Sprintf("invalid placeholder name %q", key)}
			}
			flush()
			end := nameStart + rel + len(syntax.Close)
			tokens = append(tokens, Token{
				Kind:   TokenPlaceholder,
				Text:   text[start:end],
				Key:    key,
				Offset: start,
			})
			i = end
		case strings.HasPrefix(text[i:], syntax.Close):
			return nil, &MalformedError{Offset: i, Detail: "unmatched closing delimiter"}
		default:
			lit.WriteByte(text[i])
			i++
		}
	}
	flush()

	return tokens, nil
}

// Report summarizes the placeholders found in a template.
type Report struct {
	// Keys lists distinct keyed placeholder names in first-appearance order.
	Keys []string
	// Generic counts occurrences of generic markers.
	Generic int
}

// Has reports whether the scan found the given keyed placeholder.
func (r Report) Has(key string) bool {
	for _, k := range r.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Scan tokenizes the template and reports its distinct keyed placeholder
// names plus the number of generic markers. It has no side effects.
func Scan(text string, syntax Syntax) (Report, error) {
	tokens, err := Tokenize(text, syntax)
	if err != nil {
		return Report{}, err
	}

	var report Report
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.Kind != TokenPlaceholder {
			continue
		}
		if syntax.IsGeneric(tok.Key) {
			report.Generic++
			continue
		}
		if _, ok := seen[tok.Key]; ok {
			continue
		}
		seen[tok.Key] = struct{}{}
		report.Keys = append(report.Keys, tok.Key)
	}
	return report, nil
}
