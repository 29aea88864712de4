package clave

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CodeEntry maps a descriptive phrase to the short canonical code assigned to
// a special norm (codes, the constitution, and the DFL 1/2000 compiled laws).
type CodeEntry struct {
	Phrase string `yaml:"frase"`
	Code   string `yaml:"clave"`
}

// defaultCodes is the built-in special-code table. Order is significant: the
// resolver takes the first entry whose phrase occurs in the norm description
// or type, so broader phrases ("constitucion") must come after the more
// specific ones they are a substring of ("constitucion politica").
var defaultCodes = []CodeEntry{
	{"codigo civil dfl 1 2000 articulo 2 con doble articulado", "CCCH"},
	{"codigo penal", "CPCH"},
	{"codigo de comercio", "CCOM"},
	{"codigo del trabajo", "CTCH"},
	{"codigo tributario", "CTRIB"},
	{"codigo sanitario", "CSAN"},
	{"codigo organico de tribunales", "COT"},
	{"codigo procesal penal", "CPP"},
	{"codigo de procedimiento civil", "CPC"},
	{"constitucion politica", "CRCH"},
	{"constitucion", "CRCH"},
	{"ley de abandono de familia y pensiones dfl 1 2000 articulo 7 con doble articulado", "LAFP"},
	{"ley de cambio de nombres dfl 1 2000 articulo 4 con doble articulado", "LCN"},
	{"ley de impuesto a la herencia y donaciones dfl 1 2000 articulo 8 con doble articulado", "LIHD"},
	{"ley de menores dfl 1 2000 articulo 6 con doble articulado", "LM"},
	{"ley del registro civil dfl 1 2000 articulo 3 con doble articulado", "LRC"},
}

// DefaultCodes returns a copy of the built-in special-code table in
// declaration order.
func DefaultCodes() []CodeEntry {
	codes := make([]CodeEntry, len(defaultCodes))
	copy(codes, defaultCodes)
	return codes
}

// LoadCodes reads a special-code table from a YAML file. The file must hold a
// sequence of {frase, clave} mappings; sequence order becomes match order.
func LoadCodes(path string) ([]CodeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read code table: %w", err)
	}

	var codes []CodeEntry
	if err := yaml.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("failed to parse code table: %w", err)
	}

	for i, entry := range codes {
		if entry.Phrase == "" || entry.Code == "" {
			return nil, fmt.Errorf("code table entry %d is missing frase or clave", i)
		}
	}

	return codes, nil
}
