// Package tabular loads CSV and XLSX files into a uniform in-memory table.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is one sheet of tabular data: a header row plus data rows. Rows may
// be shorter than the header; Cell treats missing cells as empty.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Cell returns the value of the named row cell, or "" if the row is short.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// ColumnIndex returns the index of the first header whose trimmed,
// lower-cased form equals the given normalized name, or -1.
func (t *Table) ColumnIndex(normalized string) int {
	for i, h := range t.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == normalized {
			return i
		}
	}
	return -1
}

// Load reads a table from path, dispatching on the file extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", path)
	}
}
