package services

import (
	"testing"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/tabular"
)

func TestFieldExtractor(t *testing.T) {
	cfg := config.DefaultConfig()
	table := &tabular.Table{
		Headers: []string{"  sessionID ", "SESSION TITLE", "Name2", "Email Address"},
		Rows: [][]string{
			{"42", "Prompting for Primary Sources", "Rivera", "rivera@example.org"},
			{"43", "  Padded Title  ", "", ""},
			{"44"},
		},
	}
	fes := NewFieldExtractorService(cfg, table)

	t.Run("case insensitive trimmed header match", func(t *testing.T) {
		if got := fes.Extract(table.Rows[0], "id"); got != "42" {
			t.Errorf("id = %q", got)
		}
		if got := fes.Extract(table.Rows[0], "title"); got != "Prompting for Primary Sources" {
			t.Errorf("title = %q", got)
		}
		if got := fes.Extract(table.Rows[0], "presenter"); got != "Rivera" {
			t.Errorf("presenter = %q", got)
		}
	})

	t.Run("cell values trimmed", func(t *testing.T) {
		if got := fes.Extract(table.Rows[1], "title"); got != "Padded Title" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("blank cell gets field default", func(t *testing.T) {
		if got := fes.Extract(table.Rows[1], "email"); got != "anonymous" {
			t.Errorf("email = %q, want anonymous", got)
		}
		if got := fes.Extract(table.Rows[1], "presenter"); got != "" {
			t.Errorf("presenter = %q, want empty", got)
		}
	})

	t.Run("short row gets field default", func(t *testing.T) {
		if got := fes.Extract(table.Rows[2], "email"); got != "anonymous" {
			t.Errorf("email = %q, want anonymous", got)
		}
	})

	t.Run("missing column gets field default", func(t *testing.T) {
		if got := fes.Extract(table.Rows[0], "location"); got != "TBD" {
			t.Errorf("location = %q, want TBD", got)
		}
		if got := fes.Extract(table.Rows[0], "description"); got != "" {
			t.Errorf("description = %q, want empty", got)
		}
	})

	t.Run("has distinguishes defaults from input", func(t *testing.T) {
		if !fes.Has(table.Rows[0], "email") {
			t.Error("Has(email) = false for populated cell")
		}
		if fes.Has(table.Rows[1], "email") {
			t.Error("Has(email) = true for blank cell")
		}
		if fes.Has(table.Rows[0], "tags") {
			t.Error("Has(tags) = true for missing column")
		}
	})
}
