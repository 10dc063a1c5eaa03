package models

import (
	"regexp"
	"strings"
)

// MinSlugLength is the minimum length of a normalized slug.
const MinSlugLength = 3

var slugStrip = regexp.MustCompile(`[^a-z0-9_]`)

// NormalizeSlug lowercases the input and strips every character outside
// [a-z0-9_]. The same rule is applied at registration and at profile update,
// so a stored slug is always in normalized form.
func NormalizeSlug(raw string) string {
	return slugStrip.ReplaceAllString(strings.ToLower(raw), "")
}

// ValidSlug reports whether the normalized form of raw is long enough to be
// used as a routing key.
func ValidSlug(raw string) bool {
	return len(NormalizeSlug(raw)) >= MinSlugLength
}
