// Package fsio is the file collaborator around the pure renderer: it loads
// templates from disk or an fs.FS and writes rendered documents with atomic
// replace semantics.
package fsio

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-docfill/pkg/template"
)

// ReadTemplate loads a template file. Content is validated (UTF-8, no NUL
// bytes) by template.New.
func ReadTemplate(path string) (template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return template.Template{}, fmt.Errorf("fsio: read template: %w", err)
	}
	return template.New(template.SourceFromFile(path), data)
}

// ReadTemplateFS loads a template from an fs.FS, e.g. an embedded template
// set shipped inside another tool.
func ReadTemplateFS(fsys fs.FS, name string) (template.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return template.Template{}, fmt.Errorf("fsio: read template: %w", err)
	}
	return template.New(template.SourceFromFS(name), data)
}

// WriteDocument writes a rendered document, replacing any existing file
// atomically so readers never observe a half-written result.
func WriteDocument(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fsio: write document: %w", err)
	}
	return nil
}
