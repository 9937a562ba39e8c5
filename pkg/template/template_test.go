package template

import (
	"strings"
	"testing"
)

func TestNew_AcceptsPlainText(t *testing.T) {
	tpl, err := New(SourceFromFile("docs/AGENT.md"), []byte("Name: {PROJECT}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tpl.Content(); got != "Name: {PROJECT}\n" {
		t.Fatalf("content mismatch: %q", got)
	}
	if tpl.Source().Kind() != SourceKindFile {
		t.Fatalf("expected file source, got %v", tpl.Source().Kind())
	}
	if tpl.Source().Location() != "docs/AGENT.md" {
		t.Fatalf("unexpected location %q", tpl.Source().Location())
	}
}

func TestNew_RejectsInvalidUTF8(t *testing.T) {
	_, err := New(SourceFromString("bad"), []byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !strings.Contains(err.Error(), "UTF-8") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_RejectsNULBytes(t *testing.T) {
	_, err := New(SourceFromString("bin"), []byte("abc\x00def"))
	if err == nil {
		t.Fatal("expected error for NUL byte")
	}
	if !strings.Contains(err.Error(), "offset 3") {
		t.Fatalf("error should identify the offset: %v", err)
	}
}

func TestNew_NilSourceDefaultsToInline(t *testing.T) {
	tpl, err := New(nil, []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Source().Kind() != SourceKindInline {
		t.Fatalf("expected inline source, got %v", tpl.Source().Kind())
	}
	if tpl.Source().Location() != "<inline>" {
		t.Fatalf("unexpected location %q", tpl.Source().Location())
	}
}

func TestSourceLocations(t *testing.T) {
	if got := SourceFromFile("a//b/../b/tpl.md").Location(); got != "a/b/tpl.md" {
		t.Fatalf("file source should clean the path, got %q", got)
	}
	if got := SourceFromFS("templates/readme.md").Location(); got != "templates/readme.md" {
		t.Fatalf("unexpected fs location %q", got)
	}
	if got := SourceFromString("stdin").Location(); got != "stdin" {
		t.Fatalf("unexpected inline label %q", got)
	}
}
