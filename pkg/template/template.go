package template

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Template is an immutable piece of parameterized text plus the source it was
// loaded from. Construction validates the payload; rendering never mutates it.
type Template struct {
	source  Source
	content string
}

// New wraps raw bytes as a Template. Content must be valid UTF-8 and free of
// NUL bytes so binary files are rejected before they reach the renderer.
func New(source Source, data []byte) (Template, error) {
	if source == nil {
		source = SourceFromString("")
	}
	if !utf8.Valid(data) {
		return Template{}, fmt.Errorf("template: %s: content is not valid UTF-8", source.Location())
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return Template{}, fmt.Errorf("template: %s: NUL byte at offset %d, input looks binary", source.Location(), i)
	}
	return Template{source: source, content: string(data)}, nil
}

// FromString wraps in-memory content as a Template.
func FromString(content string) (Template, error) {
	return New(SourceFromString(""), []byte(content))
}

// Content returns the raw template text.
func (t Template) Content() string {
	return t.content
}

// Source returns where the template came from.
func (t Template) Source() Source {
	if t.source == nil {
		return SourceFromString("")
	}
	return t.source
}
