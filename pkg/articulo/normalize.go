package articulo

import (
	"regexp"
	"strings"
)

var (
	// accentedArticuloPattern matches the full word with or without the
	// accented i, so "artículo" collapses onto the unaccented form.
	accentedArticuloPattern = regexp.MustCompile(`art[íi]culo`)

	// leadingArtPattern matches the abbreviated prefix "art" / "art." at the
	// start of the text. The word boundary keeps it from re-firing on an
	// already expanded "articulo".
	leadingArtPattern = regexp.MustCompile(`^art\b\.?\s*`)

	// whitespaceRunPattern matches runs of whitespace to collapse.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// NormalizeParty canonicalizes a nombreparte value so that variant spellings
// ("Art. 5", "artículo 5", "Articulo  5") collapse to one indexed string.
// The same function must be applied to query-time lookup strings; otherwise
// lookups against the nombreparte_normalizado index silently miss.
func NormalizeParty(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	text = accentedArticuloPattern.ReplaceAllString(text, "articulo")
	text = leadingArtPattern.ReplaceAllString(text, "articulo ")
	text = whitespaceRunPattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
