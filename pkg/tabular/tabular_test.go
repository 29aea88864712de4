package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	content := "clave_manual,norma,norma_tipo,nombreparte\n" +
		"CTRIB.Art31,Codigo Tributario,Codigo,Articulo 31\n" +
		",Ley N° 19.496,Ley,\n"

	table, err := ReadCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	expectedColumns := []string{"clave_manual", "norma", "norma_tipo", "nombreparte"}
	if len(table.Columns) != len(expectedColumns) {
		t.Fatalf("Expected %d columns, got %d", len(expectedColumns), len(table.Columns))
	}
	for i, col := range expectedColumns {
		if table.Columns[i] != col {
			t.Errorf("Column %d: expected %q, got %q", i, col, table.Columns[i])
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	if got := table.Rows[0]["clave_manual"]; got != "CTRIB.Art31" {
		t.Errorf("Expected %q, got %q", "CTRIB.Art31", got)
	}

	// Empty cells must be absent, not empty strings, so they persist as NULL.
	if _, ok := table.Rows[1]["clave_manual"]; ok {
		t.Error("Empty cell should not be stored")
	}
	if got := table.Rows[1]["norma"]; got != "Ley N° 19.496" {
		t.Errorf("Expected %q, got %q", "Ley N° 19.496", got)
	}
}

func TestReadCSVShortRecords(t *testing.T) {
	content := "a,b,c\n1,2\n"

	table, err := ReadCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}
	if _, ok := table.Rows[0]["c"]; ok {
		t.Error("Missing trailing field should not be stored")
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestReadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "normas.xlsx")

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	cells := [][]any{
		{"norma", "norma_tipo", "norma_idnorma"},
		{"Codigo Penal", "Codigo", 12345},
		{"Ley 20000", "Ley", nil},
	}
	for r, rowCells := range cells {
		for c, value := range rowCells {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := workbook.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("SetCellValue failed: %v", err)
			}
		}
	}
	if err := workbook.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	workbook.Close()

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if len(table.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d: %v", len(table.Columns), table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0]["norma"]; got != "Codigo Penal" {
		t.Errorf("Expected %q, got %q", "Codigo Penal", got)
	}
	if got := table.Rows[0]["norma_idnorma"]; got != "12345" {
		t.Errorf("Expected %q, got %q", "12345", got)
	}
	if _, ok := table.Rows[1]["norma_idnorma"]; ok {
		t.Error("Empty xlsx cell should not be stored")
	}
}

func TestReadFileDispatchesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "normas.CSV")

	content := "norma\nCodigo Penal\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}
}

func TestFixLegacyHeaders(t *testing.T) {
	table := &Table{
		Columns: []string{"norma", "ulr_norma_pdf", "reseña"},
		Rows: []map[string]string{
			{"norma": "Ley 20000", "ulr_norma_pdf": "http://example.cl/a.pdf", "reseña": "texto"},
		},
	}

	FixLegacyHeaders(table)

	expected := []string{"norma", "url_norma_pdf", "resena"}
	for i, col := range expected {
		if table.Columns[i] != col {
			t.Errorf("Column %d: expected %q, got %q", i, col, table.Columns[i])
		}
	}
	if got := table.Rows[0]["url_norma_pdf"]; got != "http://example.cl/a.pdf" {
		t.Errorf("Cell did not move with the rename, got %q", got)
	}
	if _, ok := table.Rows[0]["ulr_norma_pdf"]; ok {
		t.Error("Old column name still present in row")
	}
}

func TestFixLegacyHeadersNoOpOnCanonicalNames(t *testing.T) {
	table := &Table{
		Columns: []string{"norma", "url_norma_pdf"},
		Rows:    []map[string]string{{"norma": "x", "url_norma_pdf": "y"}},
	}

	FixLegacyHeaders(table)

	if len(table.Columns) != 2 || table.Columns[1] != "url_norma_pdf" {
		t.Errorf("Canonical headers changed: %v", table.Columns)
	}
}

func TestTableColumnHelpers(t *testing.T) {
	table := &Table{Columns: []string{"a"}}

	if !table.HasColumn("a") || table.HasColumn("b") {
		t.Error("HasColumn gave wrong answer")
	}

	table.AddColumn("b")
	table.AddColumn("b")
	if len(table.Columns) != 2 {
		t.Errorf("AddColumn must be idempotent, got %v", table.Columns)
	}

	table.RenameColumn("missing", "x")
	if len(table.Columns) != 2 {
		t.Errorf("Renaming a missing column must be a no-op, got %v", table.Columns)
	}
}
