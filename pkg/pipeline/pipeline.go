// Package pipeline derives the indexed citation columns for every row of the
// normas table: the canonical key, the article number, and the normalized
// nombreparte. Each row is processed independently; the only shared state is
// the resolver's static code table.
package pipeline

import (
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/articulo"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/clave"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/tabular"
)

// Input column names consumed by the derivation.
const (
	ColManualKey   = "clave_manual"
	ColNorma       = "norma"
	ColNormaTipo   = "norma_tipo"
	ColNormaNumero = "norma_numero"
	ColIDNorma     = "norma_idnorma"
	ColNombreparte = "nombreparte"
	ColURLPDF      = "url_norma_pdf"
)

// Derived column names written by the derivation.
const (
	ColClave             = "clave"
	ColNumeroArticulo    = "numero_articulo"
	ColNombreparteNormal = "nombreparte_normalizado"
)

// Derived holds the columns computed for one row.
type Derived struct {
	Clave                  string
	NumeroArticulo         string
	NombreparteNormalizado string
}

// Deriver computes derived citation columns. It is stateless across rows.
type Deriver struct {
	resolver *clave.Resolver
}

// NewDeriver creates a deriver backed by the built-in special-code table.
func NewDeriver() *Deriver {
	return &Deriver{resolver: clave.NewResolver()}
}

// NewDeriverWithCodes creates a deriver with a caller-supplied code table.
func NewDeriverWithCodes(codes []clave.CodeEntry) *Deriver {
	return &Deriver{resolver: clave.NewResolverWithCodes(codes)}
}

// DeriveRow computes the derived columns for one row. The key is always
// non-empty (clave.Unknown at worst). An article number present in the input
// row wins; otherwise the number split off a composite key is used, and only
// when both are empty is the nombreparte text consulted.
func (d *Deriver) DeriveRow(row map[string]string) Derived {
	raw := d.resolver.Resolve(clave.Norm{
		ManualKey:   row[ColManualKey],
		Description: row[ColNorma],
		Type:        row[ColNormaTipo],
		Number:      row[ColNormaNumero],
		IDNorma:     row[ColIDNorma],
	})

	key, fromKey, ok := clave.Decompose(raw)
	if !ok {
		key = clave.Unknown
	}

	numero := row[ColNumeroArticulo]
	if numero == "" {
		numero = fromKey
	}
	if numero == "" {
		numero = articulo.ExtractNumber(row[ColNombreparte])
	}

	return Derived{
		Clave:                  key,
		NumeroArticulo:         numero,
		NombreparteNormalizado: articulo.NormalizeParty(row[ColNombreparte]),
	}
}

// Run derives the citation columns for every row of the table in place and
// returns the row count. It also declares the derived columns in the header
// and synthesizes url_norma_pdf when the source never carried it.
func (d *Deriver) Run(t *tabular.Table) int {
	hasNombreparte := t.HasColumn(ColNombreparte)

	t.AddColumn(ColClave)
	t.AddColumn(ColNumeroArticulo)
	if hasNombreparte {
		t.AddColumn(ColNombreparteNormal)
	}
	t.AddColumn(ColURLPDF)

	for _, row := range t.Rows {
		derived := d.DeriveRow(row)
		row[ColClave] = derived.Clave
		if derived.NumeroArticulo != "" {
			row[ColNumeroArticulo] = derived.NumeroArticulo
		}
		if hasNombreparte {
			row[ColNombreparteNormal] = derived.NombreparteNormalizado
		}
	}

	return len(t.Rows)
}
