package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
	slugFormat       = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Slugify derives a URL-safe slug from a name: lowercased, punctuation
// stripped, runs of whitespace and hyphens collapsed to single hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether a client-supplied slug is URL-safe.
func ValidSlug(slug string) bool {
	return slugFormat.MatchString(slug)
}
