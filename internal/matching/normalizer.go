// Package matching reconciles participant names spelled differently across
// scraped result and odds sources.
package matching

import (
	"regexp"
	"strings"
)

// Trailing parenthetical annotations such as apprentice claims: "J Smith (a3)".
// Some feeds stack more than one, so the whole run is stripped at once.
var trailingParens = regexp.MustCompile(`(\s*\([^)]*\))+\s*$`)

// Normalize canonicalizes a raw scraped name for comparison: trailing
// parenthetical annotations are stripped, whitespace runs collapse to
// single spaces, and the result is trimmed and lower-cased. Idempotent.
func Normalize(raw string) string {
	stripped := trailingParens.ReplaceAllString(raw, "")
	return strings.ToLower(strings.Join(strings.Fields(stripped), " "))
}

// Surname returns the last whitespace-delimited token of a normalized name.
func Surname(normalized string) string {
	if idx := strings.LastIndexByte(normalized, ' '); idx >= 0 {
		return normalized[idx+1:]
	}
	return normalized
}
