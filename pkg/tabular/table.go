// Package tabular reads the normas source spreadsheet into an in-memory
// table. It accepts .xlsx workbooks (the canonical source format) and .csv
// exports, and repairs the known legacy header misspellings.
package tabular

// Table is an ordered set of named columns plus one string map per row.
// A row map has no entry for cells that were empty or absent in the source;
// the store writer persists those as NULL.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the header if it is not already declared.
// Existing rows keep no value for it, which persists as NULL.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// RenameColumn renames a header entry and moves every row's cell under the
// new name. It is a no-op when the old column does not exist.
func (t *Table) RenameColumn(oldName, newName string) {
	renamed := false
	for i, col := range t.Columns {
		if col == oldName {
			t.Columns[i] = newName
			renamed = true
			break
		}
	}
	if !renamed {
		return
	}

	for _, row := range t.Rows {
		if value, ok := row[oldName]; ok {
			delete(row, oldName)
			row[newName] = value
		}
	}
}

// legacyHeaderRenames maps misspelled source headers to their canonical
// names. The source workbook has carried these typos for years; downstream
// consumers expect the corrected names.
var legacyHeaderRenames = [][2]string{
	{"ulr_norma_pdf", "url_norma_pdf"},
	{"ulr_norma_xml", "url_norma_xml"},
	{"reseña", "resena"},
}

// FixLegacyHeaders applies the known header corrections in place. Columns
// already carrying the canonical name are left alone.
func FixLegacyHeaders(t *Table) {
	for _, rename := range legacyHeaderRenames {
		if !t.HasColumn(rename[1]) {
			t.RenameColumn(rename[0], rename[1])
		}
	}
}
