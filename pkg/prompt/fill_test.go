package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubDriver struct {
	answers map[string]string
	asked   []string
	err     error
}

func (d *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	for key, answer := range d.answers {
		if cfg.Message == "Value for {"+key+"}:" {
			if cfg.Validator != nil {
				if err := cfg.Validator(answer); err != nil {
					return "", err
				}
			}
			return answer, nil
		}
	}
	return "", errors.New("unexpected prompt: " + cfg.Message)
}

func TestFill_CollectsAnswers(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{"PROJECT": "Acme", "OWNER": "ops"}}

	values, err := Fill(context.Background(), driver, []string{"PROJECT", "OWNER"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"PROJECT": "Acme", "OWNER": "ops"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Value for {PROJECT}:", "Value for {OWNER}:"}, driver.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_RejectsEmptyAnswer(t *testing.T) {
	driver := &stubDriver{answers: map[string]string{"PROJECT": ""}}
	_, err := Fill(context.Background(), driver, []string{"PROJECT"})
	if err == nil {
		t.Fatal("expected validation error for empty answer")
	}
}

func TestFill_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	_, err := Fill(context.Background(), driver, []string{"PROJECT"})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestFill_NoKeysNoPrompts(t *testing.T) {
	driver := &stubDriver{}
	values, err := Fill(context.Background(), driver, nil)
	if err != nil || values != nil {
		t.Fatalf("expected no-op, got %v, %v", values, err)
	}
	if len(driver.asked) != 0 {
		t.Fatalf("no prompts expected, got %v", driver.asked)
	}
}

func TestFill_RequiresDriver(t *testing.T) {
	if _, err := Fill(context.Background(), nil, []string{"A"}); err == nil {
		t.Fatal("expected error for nil driver")
	}
}
