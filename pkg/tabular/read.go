package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile loads a tabular file, dispatching on the extension: .csv is read
// as comma-separated text, everything else as an Excel workbook.
func ReadFile(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSVFile(path)
	}
	return ReadXLSX(path)
}

// ReadXLSX loads the first sheet of an Excel workbook. The first row is the
// header; blank header cells and fully blank rows are skipped.
func ReadXLSX(path string) (*Table, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return tableFromRecords(rows)
}

// ReadCSVFile loads a comma-separated file with a header row.
func ReadCSVFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV loads comma-separated content from a reader. Rows may have fewer
// fields than the header; missing trailing fields become absent cells.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return tableFromRecords(records)
}

// tableFromRecords builds a Table from raw header+data records. Cells beyond
// the header width are dropped; empty cells are not stored so they persist as
// NULL rather than empty strings.
func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}

	var columns []string
	// Column index in the source record for each kept column.
	var sourceIndex []int
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		columns = append(columns, name)
		sourceIndex = append(sourceIndex, i)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("input header row is empty")
	}

	table := &Table{Columns: columns}
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		blank := true
		for c, name := range columns {
			idx := sourceIndex[c]
			if idx >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[idx])
			if value == "" {
				continue
			}
			row[name] = value
			blank = false
		}
		if blank {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
