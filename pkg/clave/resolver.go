// Package clave derives canonical citation keys for Chilean legal norms.
// A key (clave) is the short uppercase identifier downstream citation
// matchers join against, e.g. CTRIB for the tax code or L19496 for
// Ley N° 19.496.
package clave

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unknown is the sentinel key assigned to rows whose norm metadata matches
// none of the resolution rules. Such rows are still persisted.
const Unknown = "UNKNOWN"

// Norm carries the raw metadata fields of one citation record, as they come
// out of the spreadsheet. Missing fields are empty strings.
type Norm struct {
	// ManualKey is a hand-authored key (clave_manual). When present it wins
	// over every derivation rule, verbatim.
	ManualKey string

	// Description is the free-text norm description (norma),
	// e.g. "Ley N° 19.496" or "Decreto Ley 824 1974".
	Description string

	// Type is the norm type field (norma_tipo), e.g. "Ley" or
	// "Decreto con Fuerza de Ley".
	Type string

	// Number is the norm number field (norma_numero), used as a fallback for
	// plain laws when the description carries no parseable number.
	Number string

	// IDNorma is the source registry's internal numeric identifier
	// (norma_idnorma), the last resort before Unknown.
	IDNorma string
}

// Resolver derives a citation key from norm metadata. It applies, in strict
// precedence order: the manual key, the special-code table, the DFL / DL /
// Ley / Decreto Supremo patterns, the internal id, and finally the Unknown
// sentinel. Resolve never fails; every branch has a terminal fallback.
type Resolver struct {
	codes []CodeEntry

	dflPattern *regexp.Regexp
	dlPattern  *regexp.Regexp
	leyPattern *regexp.Regexp
	dsPattern  *regexp.Regexp
}

// NewResolver creates a resolver backed by the built-in special-code table.
func NewResolver() *Resolver {
	return NewResolverWithCodes(DefaultCodes())
}

// NewResolverWithCodes creates a resolver with a caller-supplied special-code
// table. Entries are tried in slice order; the first phrase found as a
// substring of the norm description or type wins.
func NewResolverWithCodes(codes []CodeEntry) *Resolver {
	return &Resolver{
		codes: codes,

		dflPattern: regexp.MustCompile(`dfl\s*(\d+)\s*(\d{4})?`),
		dlPattern:  regexp.MustCompile(`(?:decreto\s*ley|dl)\s*(\d+)\s*(\d{4})?`),
		leyPattern: regexp.MustCompile(`ley\s*(?:n(?:[uú]m)?[.°º]?\s*)?(\d+[.\d]*)`),
		dsPattern:  regexp.MustCompile(`decreto\s*supremo\s*(?:n[°º]?\s*)?(\d+)`),
	}
}

// Resolve returns the citation key for a norm. The result is always non-empty
// and uppercase; unresolvable norms yield the Unknown sentinel.
func (r *Resolver) Resolve(n Norm) string {
	if manual := strings.TrimSpace(n.ManualKey); manual != "" {
		return strings.ToUpper(manual)
	}

	norma := strings.ToLower(strings.TrimSpace(n.Description))
	tipo := strings.ToLower(strings.TrimSpace(n.Type))

	for _, entry := range r.codes {
		if strings.Contains(norma, entry.Phrase) || strings.Contains(tipo, entry.Phrase) {
			return entry.Code
		}
	}

	if containsEither(norma, tipo, "decreto con fuerza de ley") || containsEither(norma, tipo, "dfl") {
		if m := r.dflPattern.FindStringSubmatch(norma); m != nil {
			return "DFL" + m[1] + m[2]
		}
	}

	if containsEither(norma, tipo, "decreto ley") {
		if m := r.dlPattern.FindStringSubmatch(norma); m != nil {
			return "DL" + m[1] + m[2]
		}
	}

	if containsEither(norma, tipo, "ley") {
		if m := r.leyPattern.FindStringSubmatch(norma); m != nil {
			return "L" + stripNonDigits(m[1])
		}
		if num := stripNonDigits(n.Number); num != "" {
			return "L" + num
		}
	}

	if containsEither(norma, tipo, "decreto supremo") {
		if m := r.dsPattern.FindStringSubmatch(norma); m != nil {
			return "DS" + m[1]
		}
	}

	if id := strings.TrimSpace(n.IDNorma); id != "" {
		// Excel numeric cells sometimes surface as floats ("241599.0").
		if f, err := strconv.ParseFloat(id, 64); err == nil {
			return fmt.Sprintf("N%d", int64(f))
		}
	}

	return Unknown
}

// containsEither reports whether the phrase occurs in either normalized field.
func containsEither(norma, tipo, phrase string) bool {
	return strings.Contains(norma, phrase) || strings.Contains(tipo, phrase)
}

// stripNonDigits removes every non-digit rune, so "19.496" becomes "19496".
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
