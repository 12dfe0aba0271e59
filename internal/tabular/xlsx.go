package tabular

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the first sheet of an XLSX workbook into a Table.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("[TABULAR] Failed to close %s: %v", path, closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("XLSX file %s is empty", path)
	}

	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
