// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"regexp"
	"strings"
)

var disallowed = regexp.MustCompile(`[^\w-]+`)

// Derive turns a title into a slug: lowercase, spaces become hyphens,
// everything outside the word/hyphen class is stripped. Matches the rule
// the previous editor applied, so derived slugs stay stable across the
// migration.
func Derive(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	return disallowed.ReplaceAllString(s, "")
}
