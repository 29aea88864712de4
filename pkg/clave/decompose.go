package clave

import (
	"regexp"
	"strings"
)

// compositeKeyPattern matches keys that carry an article suffix, such as
// CTRIB.ART31 or DL824.1974.ART41E. The article group keeps trailing letters
// (E, BIS abbreviated as a letter, ...).
var compositeKeyPattern = regexp.MustCompile(`^([A-Z0-9.]+)\.ART(\d+[A-Z]*)$`)

// Decompose splits a raw citation key into its base key and article number.
// Keys like "CTRIB.Art31" yield ("CTRIB", "31", true); keys without the
// composite suffix pass through unchanged with an empty article. A blank key
// yields ok == false and the caller must leave the row untouched.
func Decompose(raw string) (base, article string, ok bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return "", "", false
	}

	if m := compositeKeyPattern.FindStringSubmatch(key); m != nil {
		return m[1], m[2], true
	}

	return key, "", true
}
