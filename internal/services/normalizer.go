package services

import (
	"regexp"
	"sort"
	"strings"

	"symposium-session-pipeline/internal/config"
)

// TextNormalizerService repairs and normalizes free text coming out of the
// roster: mojibake, whitespace, HTML significance, previews, and derived
// topical tags.
type TextNormalizerService struct {
	cfg         *config.Config
	tagPatterns []tagPattern
}

type tagPattern struct {
	tag      string
	patterns []*regexp.Regexp
}

// mojibake pairs, applied in order. Longer corrupted sequences must come
// first: the bare "â€" right-double-quote pattern is a prefix of every other
// "â€x" sequence and would corrupt them if applied earlier.
var mojibakeTable = []struct {
	broken string
	fixed  string
}{
	{"â€™", "’"},
	{"â€˜", "‘"},
	{"â€œ", "“"},
	{"â€“", "–"},
	{"â€”", "—"},
	{"â€¦", "…"},
	{"â‚¬", "€"},
	{"â€", "”"},
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	markupTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// NewTextNormalizerService compiles the tag taxonomy into whole-word
// matchers once, so per-session derivation is a scan over a fixed table.
func NewTextNormalizerService(cfg *config.Config) *TextNormalizerService {
	tns := &TextNormalizerService{cfg: cfg}
	for _, rule := range cfg.TagTaxonomy {
		tp := tagPattern{tag: rule.Tag}
		for _, kw := range rule.Keywords {
			tp.patterns = append(tp.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		tns.tagPatterns = append(tns.tagPatterns, tp)
	}
	return tns
}

// FixMojibake repairs known corrupted-byte sequences produced by decoding
// UTF-8 text as a single-byte encoding.
func (tns *TextNormalizerService) FixMojibake(text string) string {
	for _, entry := range mojibakeTable {
		text = strings.ReplaceAll(text, entry.broken, entry.fixed)
	}
	return text
}

// CollapseWhitespace replaces runs of whitespace, including newlines, with a
// single space and trims the result.
func (tns *TextNormalizerService) CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// EscapeHTML escapes markup-significant characters but keeps literal quote
// characters, which the site templates expect verbatim.
func (tns *TextNormalizerService) EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// Clean runs the full repair chain on a roster field: mojibake fix,
// whitespace collapse, then quote-preserving HTML escape.
func (tns *TextNormalizerService) Clean(text string) string {
	return tns.EscapeHTML(tns.CollapseWhitespace(tns.FixMojibake(text)))
}

// Preview derives a truncated plain-text summary of a description. Embedded
// markup is stripped first. Truncation prefers the last sentence-ending
// period when it falls past half the limit, then the last word boundary with
// an ellipsis, then a hard cut. The limit counts characters, not bytes: the
// curly quotes the mojibake repair produces are multibyte and must neither
// shorten the preview nor be split mid-rune.
func (tns *TextNormalizerService) Preview(description string) string {
	maxLen := tns.cfg.PreviewMaxLength

	text := markupTagRe.ReplaceAllString(description, "")

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	window := runes[:maxLen]

	if lastPeriod := lastRuneIndex(window, '.'); lastPeriod > maxLen/2 {
		return string(runes[:lastPeriod+1])
	}

	if lastSpace := lastRuneIndex(window, ' '); lastSpace != -1 {
		return string(runes[:lastSpace]) + "..."
	}

	return string(window) + "..."
}

func lastRuneIndex(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// DeriveTags scans title+description against the tag taxonomy. One keyword
// hit suffices per tag. Explicit strand mentions imply additional tags. The
// result is sorted and duplicate-free.
func (tns *TextNormalizerService) DeriveTags(title, description string) []string {
	fullText := strings.ToLower(title + " " + description)

	seen := make(map[string]bool)
	for _, tp := range tns.tagPatterns {
		for _, pattern := range tp.patterns {
			if pattern.MatchString(fullText) {
				seen[tp.tag] = true
				break
			}
		}
	}

	if strings.Contains(fullText, "strand 1") || strings.Contains(fullText, "ai in the classroom") {
		seen["AI"] = true
		seen["Pedagogy"] = true
	}
	if strings.Contains(fullText, "strand 2") || strings.Contains(fullText, "human-centered innovation") {
		seen["Innovation"] = true
	}
	if strings.Contains(fullText, "strand 3") || strings.Contains(fullText, "leadership in ai") {
		seen["Leadership"] = true
		seen["AI"] = true
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// SplitTags parses an explicit comma-separated tags column into a list.
func (tns *TextNormalizerService) SplitTags(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
