package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"symposium-session-pipeline/internal/models"
)

const patchPage = `<!DOCTYPE html>
<html>
<head><title>Sessions</title></head>
<body>
<h1>Symposium Sessions</h1>
<div id="sessions-container"><p>stale content</p></div>
</body>
</html>
`

func patchTestSessions() []*models.Session {
	return []*models.Session{
		{
			ID: "101", Title: "Prompting &amp; Primary Sources", Presenter: "Rivera",
			Preview: "Hands-on prompt design.",
			Strand:  "strand1", Type: models.TypeWorkshop,
			Tags:     []string{"AI", "Pedagogy"},
			Location: "Room A", TimeBlock: "10:15 - 11:15",
		},
		{
			ID: "special_1_Closing", Title: "Closing",
			Strand: models.StrandSpecial, Type: models.TypeSpecial,
			Location: "Auditorium", TimeBlock: "3:45 - 4:30",
			IsSpecialEvent: true,
		},
	}
}

func writePatchPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(patchPage), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestPatchFile(t *testing.T) {
	hps := NewHTMLPatchService()
	path := writePatchPage(t)

	if err := hps.PatchFile(path, "#sessions-container", patchTestSessions()); err != nil {
		t.Fatalf("PatchFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading patched page: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "stale content") {
		t.Error("old container content survived the patch")
	}
	if !strings.Contains(out, `class="session-card strand1"`) {
		t.Error("session card missing from patched page")
	}
	if !strings.Contains(out, "Rivera") {
		t.Error("presenter missing from patched page")
	}
	if strings.Contains(out, "special_1_Closing") || strings.Contains(out, ">Closing<") {
		t.Error("special event must not render as a card")
	}
	if !strings.Contains(out, "Symposium Sessions") {
		t.Error("page content outside the container must be preserved")
	}
}

func TestPatchFileIdempotent(t *testing.T) {
	hps := NewHTMLPatchService()
	path := writePatchPage(t)
	sessions := patchTestSessions()

	if err := hps.PatchFile(path, "#sessions-container", sessions); err != nil {
		t.Fatalf("first patch: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading after first patch: %v", err)
	}

	if err := hps.PatchFile(path, "#sessions-container", sessions); err != nil {
		t.Fatalf("second patch: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading after second patch: %v", err)
	}

	if string(first) != string(second) {
		t.Error("patching twice with the same sessions changed the document")
	}
}

func TestPatchMissingSelector(t *testing.T) {
	hps := NewHTMLPatchService()
	path := writePatchPage(t)

	err := hps.PatchFile(path, "#no-such-container", patchTestSessions())
	if err == nil {
		t.Fatal("expected error for missing selector")
	}
	if !strings.Contains(err.Error(), "no-such-container") {
		t.Errorf("error should name the selector, got %v", err)
	}
}

func TestRenderSessionCard(t *testing.T) {
	s := patchTestSessions()[0]
	card := RenderSessionCard(s)

	t.Run("carries filter attributes", func(t *testing.T) {
		if !strings.Contains(card, `data-strand="strand1"`) || !strings.Contains(card, `data-type="workshop"`) {
			t.Errorf("card = %s", card)
		}
	})

	t.Run("pre-escaped title inserted verbatim", func(t *testing.T) {
		// Title text is already entity-escaped upstream; re-escaping would
		// double the ampersand.
		if !strings.Contains(card, "Prompting &amp; Primary Sources") {
			t.Errorf("card = %s", card)
		}
		if strings.Contains(card, "&amp;amp;") {
			t.Error("title was double-escaped")
		}
	})

	t.Run("time and room cell", func(t *testing.T) {
		if !strings.Contains(card, "10:15 - 11:15 | Room A") {
			t.Errorf("card = %s", card)
		}
	})

	t.Run("tags rendered as spans", func(t *testing.T) {
		if !strings.Contains(card, `<span class="tag">AI</span>`) {
			t.Errorf("card = %s", card)
		}
	})

	t.Run("empty optional fields omitted", func(t *testing.T) {
		bare := RenderSessionCard(&models.Session{ID: "1", Title: "T", Strand: "strand1", Type: "workshop"})
		if strings.Contains(bare, "session-presenter") || strings.Contains(bare, "session-tags") {
			t.Errorf("bare card = %s", bare)
		}
	})
}
