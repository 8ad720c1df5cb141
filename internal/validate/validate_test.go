package validate_test

import (
	"testing"

	"github.com/5w1tchy/reading-list-api/internal/validate"
)

func TestRequireBounded(t *testing.T) {
	if _, err := validate.RequireBounded("title", "", 1, 255); err == nil {
		t.Error("empty value should fail")
	}
	if _, err := validate.RequireBounded("title", "   ", 1, 255); err == nil {
		t.Error("whitespace-only value should fail")
	}
	got, err := validate.RequireBounded("title", "  Clean Code  ", 1, 255)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Clean Code" {
		t.Errorf("want trimmed value, got %q", got)
	}
}

func TestStatus(t *testing.T) {
	for _, s := range []string{"to-read", "reading", "completed"} {
		if _, err := validate.Status(s); err != nil {
			t.Errorf("%q should be valid: %v", s, err)
		}
	}
	for _, s := range []string{"", "done", "want-to-read", "Completed"} {
		if _, err := validate.Status(s); err == nil {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestRating(t *testing.T) {
	for n := 1; n <= 5; n++ {
		if err := validate.Rating(n); err != nil {
			t.Errorf("rating %d should be valid: %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 6, 100} {
		if err := validate.Rating(n); err == nil {
			t.Errorf("rating %d should be invalid", n)
		}
	}
}
