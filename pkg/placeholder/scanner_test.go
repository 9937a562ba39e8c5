package placeholder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan_CollectsDistinctKeysInOrder(t *testing.T) {
	report, err := Scan("# {PROJECT}\n\nOwner: {OWNER}. See {PROJECT} docs.\n", Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"PROJECT", "OWNER"}, report.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if report.Generic != 0 {
		t.Fatalf("expected no generic markers, got %d", report.Generic)
	}
}

func TestScan_CountsGenericMarkers(t *testing.T) {
	report, err := Scan("Status: {tbd}. Deadline: {tbd}. Name: {PROJECT}.", Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generic != 2 {
		t.Fatalf("expected 2 generic markers, got %d", report.Generic)
	}
	if diff := cmp.Diff([]string{"PROJECT"}, report.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if !report.Has("PROJECT") || report.Has("tbd") {
		t.Fatalf("Has misclassified keys: %+v", report)
	}
}

func TestScan_NoPlaceholders(t *testing.T) {
	report, err := Scan("plain prose, no holes here\n", Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Keys) != 0 || report.Generic != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestScan_MalformedOffsets(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		offset int
		detail string
	}{
		{"unterminated", "abc {PROJECT", 4, "unterminated placeholder"},
		{"empty name", "abc {} def", 4, "empty placeholder name"},
		{"invalid name", "x {a b} y", 2, `invalid placeholder name "a b"`},
		{"nested open", "x {a{b} y", 2, `invalid placeholder name "a{b"`},
		{"lone close", "noise } here", 6, "unmatched closing delimiter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Scan(tc.input, Default())
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedError, got %v", err)
			}
			if malformed.Offset != tc.offset {
				t.Fatalf("offset = %d, want %d", malformed.Offset, tc.offset)
			}
			if malformed.Detail != tc.detail {
				t.Fatalf("detail = %q, want %q", malformed.Detail, tc.detail)
			}
		})
	}
}

func TestTokenize_EscapedDelimiters(t *testing.T) {
	tokens, err := Tokenize("code {{sample}} and {KEY}", Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Kind: TokenLiteral, Text: "code {sample} and ", Offset: 0},
		{Kind: TokenPlaceholder, Text: "{KEY}", Key: "KEY", Offset: 20},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_PlaceholderOffsets(t *testing.T) {
	tokens, err := Tokenize("{A}-{B}", Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Kind: TokenPlaceholder, Text: "{A}", Key: "A", Offset: 0},
		{Kind: TokenLiteral, Text: "-", Offset: 3},
		{Kind: TokenPlaceholder, Text: "{B}", Key: "B", Offset: 4},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_CustomDelimiters(t *testing.T) {
	syntax := Syntax{Open: "<%", Close: "%>", Generic: []string{"todo"}}
	tokens, err := Tokenize("a <%NAME%> b <%todo%>", syntax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[1].Key != "NAME" || tokens[3].Key != "todo" {
		t.Fatalf("unexpected keys: %+v", tokens)
	}
}
