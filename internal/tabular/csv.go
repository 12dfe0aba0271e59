package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LoadCSV reads a CSV file into a Table. The reader tolerates a UTF-8 byte
// order mark and ragged rows; malformed rows are logged and skipped rather
// than aborting the whole read.
func LoadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}

	// Strip the BOM some spreadsheet exports prepend.
	text := strings.TrimPrefix(string(data), "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var table Table
	rowNum := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("[TABULAR] Skipping malformed CSV row %d in %s: %v", rowNum+1, path, err)
				rowNum++
				continue
			}
			return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
		}
		if rowNum == 0 {
			table.Headers = record
		} else {
			table.Rows = append(table.Rows, record)
		}
		rowNum++
	}

	if len(table.Headers) == 0 {
		return nil, fmt.Errorf("CSV file %s is empty or has no header row", path)
	}

	return &table, nil
}
