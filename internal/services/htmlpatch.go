package services

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"symposium-session-pipeline/internal/models"
)

// HTMLPatchService rewrites the session-card container of a static page to
// mirror the current session collection. Patching is destructive and
// idempotent: the container is always cleared and rebuilt, never diffed,
// so the same collection always yields the same document.
type HTMLPatchService struct{}

// NewHTMLPatchService creates an HTML patcher.
func NewHTMLPatchService() *HTMLPatchService {
	return &HTMLPatchService{}
}

// PatchFile replaces the children of the selected container in an HTML file
// with one card per regular session and writes the document back.
func (hps *HTMLPatchService) PatchFile(path, selector string, sessions []*models.Session) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	doc, err := goquery.NewDocumentFromReader(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := hps.Patch(doc, selector, sessions); err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}

	out, err := doc.Html()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Patch clears the selected container and appends one rendered card per
// non-special session.
func (hps *HTMLPatchService) Patch(doc *goquery.Document, selector string, sessions []*models.Session) error {
	container := doc.Find(selector)
	if container.Length() == 0 {
		return fmt.Errorf("no element matches selector %q", selector)
	}

	var cards strings.Builder
	for _, s := range sessions {
		if s.IsSpecialEvent {
			continue
		}
		cards.WriteString(RenderSessionCard(s))
	}

	container.SetHtml(cards.String())
	return nil
}

// RenderSessionCard renders one session as a card fragment. Strand and type
// codes ride along as CSS classes and data attributes for page-side
// filtering.
func RenderSessionCard(s *models.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="session-card %s" data-strand="%s" data-type="%s">`,
		html.EscapeString(s.Strand), html.EscapeString(s.Strand), html.EscapeString(s.Type))

	fmt.Fprintf(&b, `<div class="session-title">%s</div>`, s.Title)

	if s.Presenter != "" {
		fmt.Fprintf(&b, `<div class="session-presenter">%s</div>`, s.Presenter)
	}

	if s.Preview != "" {
		fmt.Fprintf(&b, `<div class="session-preview">%s</div>`, s.Preview)
	}

	if s.TimeBlock != "" && s.Location != "" {
		fmt.Fprintf(&b, `<div class="session-time-room">%s | %s</div>`, s.TimeBlock, html.EscapeString(s.Location))
	}

	if len(s.Tags) > 0 {
		b.WriteString(`<div class="session-tags">`)
		for _, tag := range s.Tags {
			fmt.Fprintf(&b, `<span class="tag">%s</span>`, html.EscapeString(tag))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}
