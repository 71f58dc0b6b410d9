package shortener

import (
	"strings"
	"testing"
)

func TestGenerateSecureSlug(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		slug, err := GenerateSecureSlug(8)
		if err != nil {
			t.Fatalf("GenerateSecureSlug failed: %v", err)
		}
		if len(slug) != 8 {
			t.Fatalf("expected length 8, got %d (%q)", len(slug), slug)
		}
		for _, ch := range slug {
			if !strings.ContainsRune(alphabet, ch) {
				t.Fatalf("slug %q contains invalid character %q", slug, ch)
			}
		}
		if seen[slug] {
			t.Fatalf("duplicate slug generated: %q", slug)
		}
		seen[slug] = true
	}
}

func TestGenerateSecureSlugInvalidLength(t *testing.T) {
	if _, err := GenerateSecureSlug(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Flower Shop", "flower-shop"},
		{"  Doces & Salgados  ", "doces-salgados"},
		{"UPPER", "upper"},
		{"---", ""},
		{"a  b   c", "a-b-c"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"bakery": true}
	slug, err := UniqueSlug("Bakery", func(s string) (bool, error) {
		return taken[s], nil
	})
	if err != nil {
		t.Fatalf("UniqueSlug failed: %v", err)
	}
	if !strings.HasPrefix(slug, "bakery-") {
		t.Fatalf("expected suffixed slug, got %q", slug)
	}

	slug, err = UniqueSlug("Fresh Pasta", func(s string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("UniqueSlug failed: %v", err)
	}
	if slug != "fresh-pasta" {
		t.Fatalf("expected %q, got %q", "fresh-pasta", slug)
	}
}
