package template

import "path/filepath"

// SourceKind identifies where template content originated.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindInline SourceKind = "inline"
)

// Source identifies the origin of a template so diagnostics and CLI output
// can reference it. Sources carry no content; see New.
type Source interface {
	Location() string
	Kind() SourceKind
}

// fileSource identifies on-disk templates.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// inlineSource labels templates supplied directly as strings.
type inlineSource struct {
	label string
}

func (s inlineSource) Location() string {
	if s.label == "" {
		return "<inline>"
	}
	return s.label
}

func (s inlineSource) Kind() SourceKind {
	return SourceKindInline
}

// SourceFromString returns a Source for in-memory template content. The label
// is used in diagnostics and may be empty.
func SourceFromString(label string) Source {
	return inlineSource{label: label}
}
