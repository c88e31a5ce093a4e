package domain

import (
	"strings"
)

// NormalizeEmail trims and lowercases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserSlug derives a user slug from an email: "a.b@x.com" -> "a-b-x-com".
func UserSlug(email string) string {
	return strings.NewReplacer("@", "-", ".", "-").Replace(email)
}

// PostSlug derives a post slug from its title: spaces become hyphens and
// the result is lowercased.
func PostSlug(title string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
}

// CategorySlug normalizes a client-supplied category slug.
func CategorySlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
