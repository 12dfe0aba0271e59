package services

import (
	"log"
	"strings"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/tabular"
)

// FieldExtractorService resolves canonical field names against a roster
// table whose headers vary between exports. Header matching is
// case-insensitive, whitespace-trimmed, first alias wins.
type FieldExtractorService struct {
	aliases map[string][]string
	columns map[string]int
}

// FieldDefaults are substituted when a field's column is missing or blank.
// Fields not listed here resolve to the empty string.
var fieldDefaults = map[string]string{
	"location": "TBD",
	"email":    "anonymous",
}

// NewFieldExtractorService creates an extractor bound to one table's headers.
func NewFieldExtractorService(cfg *config.Config, table *tabular.Table) *FieldExtractorService {
	fes := &FieldExtractorService{
		aliases: cfg.HeaderAliases,
		columns: make(map[string]int),
	}

	for field, names := range cfg.HeaderAliases {
		fes.columns[field] = -1
		for _, name := range names {
			if idx := table.ColumnIndex(name); idx >= 0 {
				fes.columns[field] = idx
				break
			}
		}
		if fes.columns[field] < 0 {
			log.Printf("[EXTRACT] No header found for field %q (aliases: %v)", field, names)
		}
	}

	return fes
}

// Extract returns the raw string value of a canonical field for one row.
// Missing columns and blank cells resolve to the field's default; Extract
// never fails on absent headers.
func (fes *FieldExtractorService) Extract(row []string, field string) string {
	idx, ok := fes.columns[field]
	if !ok || idx < 0 || idx >= len(row) {
		return fieldDefaults[field]
	}

	value := strings.TrimSpace(row[idx])
	if value == "" {
		return fieldDefaults[field]
	}
	return value
}

// Has reports whether the field's column exists and the row cell is
// non-blank, letting callers distinguish a default from real input.
func (fes *FieldExtractorService) Has(row []string, field string) bool {
	idx, ok := fes.columns[field]
	if !ok || idx < 0 || idx >= len(row) {
		return false
	}
	return strings.TrimSpace(row[idx]) != ""
}
