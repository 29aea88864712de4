// Package articulo extracts and normalizes article references from the
// free-text nombreparte field ("Artículo 41 bis", "Art. 5", bare numbers).
package articulo

import (
	"regexp"
	"strings"
)

var (
	// markerNumberPattern matches an explicit article marker followed by a
	// number and an optional Latin ordinal suffix.
	markerNumberPattern = regexp.MustCompile(`(?:art[íi]culo|art\.?)\s*(\d+(?:\s*(?:bis|ter|quater|quinquies|sexies))?)`)

	// bareNumberPattern matches text that is nothing but an article number.
	bareNumberPattern = regexp.MustCompile(`^\d+$`)
)

// ExtractNumber pulls an article number out of free text. It returns the
// number with any ordinal suffix kept as a trailing word ("41 bis"), the text
// itself when it is purely digits, or "" when no article reference is found.
// An empty result is not an error; callers persist it as-is.
func ExtractNumber(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	if m := markerNumberPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	if bareNumberPattern.MatchString(text) {
		return text
	}

	return ""
}
