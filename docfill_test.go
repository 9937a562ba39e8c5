package docfill

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docfill/pkg/render"
)

func TestRenderString_EndToEnd(t *testing.T) {
	content := "# {PROJECT}\n\nOwner: {OWNER}\nStatus: {tbd}\n"

	result, err := RenderString(content, map[string]string{
		"PROJECT": "Acme",
		"OWNER":   "platform team",
	}, ModePartial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# Acme\n\nOwner: platform team\nStatus: {tbd}\n"
	if string(result.Output) != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", result.Output, want)
	}
	if len(result.Unresolved) != 0 {
		t.Fatalf("generic markers are exempt by default, got %v", result.Unresolved)
	}
}

func TestRenderString_StrictMissingKey(t *testing.T) {
	_, err := RenderString("Hello {NAME}", nil, ModeStrict)
	var missing *render.MissingKeyError
	if !errors.As(err, &missing) || missing.Key != "NAME" {
		t.Fatalf("expected MissingKeyError for NAME, got %v", err)
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte("Project: {PROJECT}\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	result, err := RenderFile(path, map[string]string{"PROJECT": "Acme"}, ModeStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result.Output) != "Project: Acme\n" {
		t.Fatalf("output mismatch: %q", result.Output)
	}
}

func TestScanString(t *testing.T) {
	report, err := ScanString("{PROJECT} and {OWNER} and {tbd} and {tbd}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"PROJECT", "OWNER"}, report.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if report.Generic != 2 {
		t.Fatalf("generic count = %d, want 2", report.Generic)
	}
}
