package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultSessionType != "workshop" {
		t.Errorf("DefaultSessionType = %q", cfg.DefaultSessionType)
	}
	if cfg.PreviewMaxLength != 150 {
		t.Errorf("PreviewMaxLength = %d", cfg.PreviewMaxLength)
	}
	if cfg.SimilarityThreshold != 0.85 {
		t.Errorf("SimilarityThreshold = %f", cfg.SimilarityThreshold)
	}
	if len(cfg.StrandFilter) != 0 {
		t.Errorf("StrandFilter = %v, want empty", cfg.StrandFilter)
	}
	if len(cfg.TagTaxonomy) == 0 {
		t.Error("TagTaxonomy is empty")
	}
	if _, ok := cfg.HeaderAliases["id"]; !ok {
		t.Error("HeaderAliases missing id field")
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.DefaultSessionType != "workshop" {
			t.Errorf("DefaultSessionType = %q", cfg.DefaultSessionType)
		}
	})

	t.Run("overlay keeps unset defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"strandFilter": ["1", "2"], "defaultSessionType": "default"}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(cfg.StrandFilter) != 2 {
			t.Errorf("StrandFilter = %v", cfg.StrandFilter)
		}
		if cfg.DefaultSessionType != "default" {
			t.Errorf("DefaultSessionType = %q", cfg.DefaultSessionType)
		}
		if cfg.PreviewMaxLength != 150 {
			t.Errorf("PreviewMaxLength = %d, default should survive overlay", cfg.PreviewMaxLength)
		}
		if len(cfg.TagTaxonomy) == 0 {
			t.Error("TagTaxonomy default should survive overlay")
		}
	})

	t.Run("out of range values fall back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"previewMaxLength": -5, "similarityThreshold": 3.0}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.PreviewMaxLength != 150 {
			t.Errorf("PreviewMaxLength = %d", cfg.PreviewMaxLength)
		}
		if cfg.SimilarityThreshold != 0.85 {
			t.Errorf("SimilarityThreshold = %f", cfg.SimilarityThreshold)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func TestKeepsStrand(t *testing.T) {
	t.Run("empty filter keeps all", func(t *testing.T) {
		cfg := DefaultConfig()
		for _, strand := range []string{"1", "2", "3", "4"} {
			if !cfg.KeepsStrand(strand) {
				t.Errorf("KeepsStrand(%s) = false with empty filter", strand)
			}
		}
	})

	t.Run("filter restricts", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.StrandFilter = []string{"1", "3"}
		if !cfg.KeepsStrand("1") || !cfg.KeepsStrand("3") {
			t.Error("listed strands must be kept")
		}
		if cfg.KeepsStrand("2") || cfg.KeepsStrand("4") {
			t.Error("unlisted strands must be dropped")
		}
	})
}
