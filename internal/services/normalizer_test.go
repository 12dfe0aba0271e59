package services

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"symposium-session-pipeline/internal/config"
)

func newTestNormalizer(t *testing.T) *TextNormalizerService {
	t.Helper()
	return NewTextNormalizerService(config.DefaultConfig())
}

func TestFixMojibake(t *testing.T) {
	tns := newTestNormalizer(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"right single quote", "studentâ€™s work", "student’s work"},
		{"left double quote", "â€œUngrading", "“Ungrading"},
		{"right double quote", "Ungradingâ€", "Ungrading”"},
		{"en dash", "9:00â€“10:00", "9:00–10:00"},
		{"ellipsis", "and moreâ€¦", "and more…"},
		{"clean text untouched", "AI in the Classroom", "AI in the Classroom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tns.FixMojibake(tt.input); got != tt.want {
				t.Errorf("FixMojibake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixMojibakeOrdering(t *testing.T) {
	tns := newTestNormalizer(t)

	// The bare right-double-quote sequence is a prefix of the longer
	// patterns; a quoted phrase must survive with both quotes intact.
	got := tns.FixMojibake("â€œUngradingâ€ in practice")
	want := "“Ungrading” in practice"
	if got != want {
		t.Errorf("FixMojibake = %q, want %q", got, want)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tns := newTestNormalizer(t)

	got := tns.CollapseWhitespace("  line one\n\nline\ttwo   ")
	if got != "line one line two" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}

func TestEscapeHTMLPreservesQuotes(t *testing.T) {
	tns := newTestNormalizer(t)

	got := tns.EscapeHTML(`Teaching <AI> "right" & 'well'`)
	want := `Teaching &lt;AI&gt; "right" &amp; 'well'`
	if got != want {
		t.Errorf("EscapeHTML = %q, want %q", got, want)
	}
}

func TestPreview(t *testing.T) {
	tns := newTestNormalizer(t)

	t.Run("short text unchanged", func(t *testing.T) {
		if got := tns.Preview("A short description."); got != "A short description." {
			t.Errorf("Preview = %q", got)
		}
	})

	t.Run("truncates at period past half length", func(t *testing.T) {
		// 200 characters, period at index 120, none after.
		text := strings.Repeat("a", 120) + "." + strings.Repeat("b", 79)
		got := tns.Preview(text)
		if len(got) != 121 {
			t.Errorf("Preview length = %d, want 121", len(got))
		}
		if !strings.HasSuffix(got, ".") {
			t.Errorf("Preview should end with the period, got %q", got[len(got)-5:])
		}
	})

	t.Run("early period falls back to word boundary", func(t *testing.T) {
		// Period at index 10 is before half the limit, so the cut lands
		// on the last space with an ellipsis.
		text := "Short one. " + strings.Repeat("word ", 50)
		got := tns.Preview(text)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("Preview should end with ellipsis, got %q", got)
		}
		if len(got) > 153 {
			t.Errorf("Preview too long: %d", len(got))
		}
	})

	t.Run("no word boundary hard truncates", func(t *testing.T) {
		text := strings.Repeat("x", 300)
		got := tns.Preview(text)
		if got != strings.Repeat("x", 150)+"..." {
			t.Errorf("Preview = %q", got)
		}
	})

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		// 140 runes but 176 bytes; a byte-counting cut would truncate it.
		text := strings.Repeat("it’s ok ", 17) + "don…"
		if got := tns.Preview(text); got != text {
			t.Errorf("Preview truncated a %d-rune description: %q", len([]rune(text)), got)
		}
	})

	t.Run("hard truncate keeps rune boundaries", func(t *testing.T) {
		text := strings.Repeat("é", 300)
		got := tns.Preview(text)
		if !utf8.ValidString(got) {
			t.Fatalf("Preview emitted invalid UTF-8: %q", got)
		}
		if got != strings.Repeat("é", 150)+"..." {
			t.Errorf("Preview = %q", got)
		}
	})

	t.Run("strips embedded markup", func(t *testing.T) {
		got := tns.Preview("Hands-on <b>workshop</b> time")
		if got != "Hands-on workshop time" {
			t.Errorf("Preview = %q", got)
		}
	})
}

func TestDeriveTags(t *testing.T) {
	tns := newTestNormalizer(t)

	t.Run("keyword match", func(t *testing.T) {
		tags := tns.DeriveTags("Using ChatGPT for essay feedback", "Students draft and revise writing assignments.")
		assertHasTag(t, tags, "AI")
		assertHasTag(t, tags, "Writing")
		assertHasTag(t, tags, "Assessment")
	})

	t.Run("whole word matching avoids substrings", func(t *testing.T) {
		// "train" must not trigger the "ai" keyword.
		tags := tns.DeriveTags("How we train teachers", "A mentoring conversation.")
		for _, tag := range tags {
			if tag == "AI" {
				t.Errorf("unexpected AI tag from substring match: %v", tags)
			}
		}
	})

	t.Run("strand mention implies tags", func(t *testing.T) {
		tags := tns.DeriveTags("Strand 2 overview", "What human-centered innovation means here.")
		assertHasTag(t, tags, "Innovation")
	})

	t.Run("sorted and deduplicated", func(t *testing.T) {
		tags := tns.DeriveTags("AI and more AI", "artificial intelligence, chatgpt, writing, essay")
		if !sortedUnique(tags) {
			t.Errorf("tags not sorted/unique: %v", tags)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		title := "Simulations for history classrooms"
		desc := "Role-playing primary sources with reflection and assessment."
		first := tns.DeriveTags(title, desc)
		for i := 0; i < 10; i++ {
			if got := tns.DeriveTags(title, desc); !reflect.DeepEqual(got, first) {
				t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
			}
		}
	})
}

func TestSplitTags(t *testing.T) {
	tns := newTestNormalizer(t)

	t.Run("comma separated", func(t *testing.T) {
		got := tns.SplitTags("AI, Writing , ,Pedagogy")
		want := []string{"AI", "Writing", "Pedagogy"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SplitTags = %v, want %v", got, want)
		}
	})

	t.Run("single tag", func(t *testing.T) {
		got := tns.SplitTags("Ethics")
		if !reflect.DeepEqual(got, []string{"Ethics"}) {
			t.Errorf("SplitTags = %v", got)
		}
	})

	t.Run("blank", func(t *testing.T) {
		if got := tns.SplitTags("   "); got != nil {
			t.Errorf("SplitTags = %v, want nil", got)
		}
	})
}

func assertHasTag(t *testing.T, tags []string, want string) {
	t.Helper()
	for _, tag := range tags {
		if tag == want {
			return
		}
	}
	t.Errorf("expected tag %q in %v", want, tags)
}

func sortedUnique(tags []string) bool {
	for i := 1; i < len(tags); i++ {
		if tags[i] <= tags[i-1] {
			return false
		}
	}
	return true
}
