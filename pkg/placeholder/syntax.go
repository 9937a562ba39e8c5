package placeholder

import (
	"fmt"
	"strings"
)

// Syntax describes the concrete placeholder notation a document set uses.
// The delimiters are a wrapper-supplied convention, not a property of the
// renderer; documentation templates in the wild use {PROJECT}-style braces,
// so that is the default.
type Syntax struct {
	// Open and Close delimit a placeholder. A doubled delimiter escapes
	// itself and emits one literal copy.
	Open  string
	Close string
	// Generic lists marker names (e.g. "tbd") that signal "value not yet
	// decided". They are exempt from strict coverage unless the renderer is
	// configured otherwise.
	Generic []string
}

// Default returns the brace syntax used by the stock documentation
// templates: {KEY} placeholders with {tbd} as the generic marker.
func Default() Syntax {
	return Syntax{
		Open:    "{",
		Close:   "}",
		Generic: []string{"tbd"},
	}
}

// Validate reports configuration mistakes early, before any scanning runs.
func (s Syntax) Validate() error {
	if s.Open == "" || s.Close == "" {
		return fmt.Errorf("placeholder: open and close delimiters are required")
	}
	if s.Open == s.Close {
		return fmt.Errorf("placeholder: open and close delimiters must differ")
	}
	for _, marker := range s.Generic {
		if strings.TrimSpace(marker) == "" {
			return fmt.Errorf("placeholder: generic marker names must be non-empty")
		}
		if !validKey(marker) {
			return fmt.Errorf("placeholder: generic marker %q is not a valid placeholder name", marker)
		}
	}
	return nil
}

// IsGeneric reports whether a scanned name is one of the generic markers.
func (s Syntax) IsGeneric(key string) bool {
	for _, marker := range s.Generic {
		if key == marker {
			return true
		}
	}
	return false
}

// validKey restricts placeholder names to letters, digits, underscores,
// dots, and dashes. Anything else inside delimiters is malformed, which is
// what catches nested or unbalanced delimiter sequences.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
