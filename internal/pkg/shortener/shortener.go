package shortener

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// Alphabet for slug/code generation (62 characters: 0-9, a-z, A-Z)
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateSecureSlug creates a cryptographically secure random Base62 slug.
// Used for order codes handed to shoppers.
func GenerateSecureSlug(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid slug length: %d", length)
	}

	// Rejection sampling to avoid modulo bias.
	// 248 is the largest multiple of 62 below 256.
	const maxRandomByte = 248

	slug := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			slug[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(slug), nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-safe handle: lowercased, runs of
// non-alphanumerics collapsed to single dashes, edges trimmed.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug appends a short random suffix until exists reports false.
// Storefront and product handles must stay unique within their scope.
func UniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "catalog"
	}

	candidate := base
	for i := 0; i < 5; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix, err := GenerateSecureSlug(4)
		if err != nil {
			return "", err
		}
		candidate = base + "-" + strings.ToLower(suffix)
	}
	return "", fmt.Errorf("could not find a free slug for %q", name)
}
