package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docfill/pkg/fsio"
	"github.com/goliatone/go-docfill/pkg/template"
)

// MustTemplate wraps inline content as a Template. Testing helpers fail fast
// to keep contract tests concise.
func MustTemplate(t *testing.T, content string) template.Template {
	t.Helper()

	tpl, err := template.FromString(content)
	if err != nil {
		t.Fatalf("build template: %v", err)
	}
	return tpl
}

// LoadTemplate reads a fixture file from disk.
func LoadTemplate(t *testing.T, path string) template.Template {
	t.Helper()

	tpl, err := fsio.ReadTemplate(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	return tpl
}

// EqualStrings fails the test with a cmp diff when the strings differ.
func EqualStrings(t *testing.T, want, got string) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
