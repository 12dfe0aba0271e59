// Package config holds the run configuration for the session pipeline.
// The three divergent generator scripts this tool replaces differed only in
// strand filtering, default session type, and tag taxonomy; those knobs live
// here as explicit configuration instead of code forks.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// TagRule maps one topical tag to the keywords or phrases that trigger it.
// Rules are evaluated in slice order so tag derivation never depends on map
// iteration order.
type TagRule struct {
	Tag      string   `json:"tag"`
	Keywords []string `json:"keywords"`
}

// Config is the immutable configuration for one pipeline run.
type Config struct {
	// StrandFilter keeps only sessions in the listed strand numbers
	// (e.g. ["1","2"]). Empty means keep all strands.
	StrandFilter []string `json:"strandFilter"`

	// DefaultSessionType is assigned when no type rule matches the
	// free-text format field.
	DefaultSessionType string `json:"defaultSessionType"`

	// PreviewMaxLength bounds the derived plain-text preview.
	PreviewMaxLength int `json:"previewMaxLength"`

	// SimilarityThreshold is the minimum ratio for fuzzy title matches.
	SimilarityThreshold float64 `json:"similarityThreshold"`

	// FlattenOccurrences switches the published sessions view to the
	// legacy one-entry-per-occurrence projection.
	FlattenOccurrences bool `json:"flattenOccurrences"`

	// TagTaxonomy drives keyword-based tag derivation.
	TagTaxonomy []TagRule `json:"tagTaxonomy"`

	// HeaderAliases maps canonical field names to acceptable roster
	// headers, in priority order.
	HeaderAliases map[string][]string `json:"headerAliases"`
}

// DefaultConfig returns the built-in configuration matching the published
// symposium site.
func DefaultConfig() *Config {
	return &Config{
		StrandFilter:        nil,
		DefaultSessionType:  "workshop",
		PreviewMaxLength:    150,
		SimilarityThreshold: 0.85,
		TagTaxonomy:         defaultTagTaxonomy(),
		HeaderAliases:       defaultHeaderAliases(),
	}
}

// Load reads a JSON config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.PreviewMaxLength <= 0 {
		cfg.PreviewMaxLength = 150
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		cfg.SimilarityThreshold = 0.85
	}
	if cfg.DefaultSessionType == "" {
		cfg.DefaultSessionType = "workshop"
	}

	return cfg, nil
}

// KeepsStrand reports whether the strand number survives the strand filter.
func (c *Config) KeepsStrand(strandNumber string) bool {
	if len(c.StrandFilter) == 0 {
		return true
	}
	for _, s := range c.StrandFilter {
		if s == strandNumber {
			return true
		}
	}
	return false
}

func defaultHeaderAliases() map[string][]string {
	return map[string][]string{
		"id":           {"sessionid", "session id", "id"},
		"title":        {"session title", "title", "presentation title"},
		"presenter":    {"presenter", "presenter name", "speaker", "name", "name2"},
		"organization": {"school", "institution", "organization", "affiliation", "school or organization"},
		"email":        {"email", "email address", "e-mail address"},
		"description":  {"session description", "description", "abstract", "details"},
		"strand":       {"strand", "track", "category", "which strand will your presentation be in?"},
		"type":         {"session type", "type", "format", "what is the format of your session?"},
		"timeBlock":    {"time block", "timeblock", "block", "session block", "time"},
		"location":     {"location", "room", "venue"},
		"tags":         {"tags"},
	}
}

func defaultTagTaxonomy() []TagRule {
	return []TagRule{
		{Tag: "AI", Keywords: []string{
			"ai", "artificial intelligence", "gpt", "llm", "large language model",
			"chatgpt", "claude", "gemini", "prompt", "prompt design",
			"prompt engineering", "chatbot", "bot", "generative ai", "ai literacy"}},
		{Tag: "Assessment", Keywords: []string{
			"assessment", "grading", "ungrading", "feedback", "evaluation",
			"rubric", "student work"}},
		{Tag: "Collaboration", Keywords: []string{
			"collaboration", "collaborative", "pair programming", "co-lab",
			"working group", "community engagement", "interschool",
			"teamwork", "group work"}},
		{Tag: "Curriculum", Keywords: []string{
			"curriculum", "lesson planning", "assessment", "ungrading",
			"course design", "unit plan", "framework", "assignments", "syllabus"}},
		{Tag: "Ethics", Keywords: []string{
			"ethic", "ethical", "values", "dignity", "manipulation",
			"dependency", "digital citizenship", "academic integrity",
			"plagiarism", "ai policy", "appropriate use"}},
		{Tag: "History", Keywords: []string{
			"history", "historical", "primary sources"}},
		{Tag: "Humanities", Keywords: []string{
			"humanities", "literature", "history", "english", "writing",
			"text", "reading", "ethical history", "literacy", "close reading",
			"philosophy"}},
		{Tag: "Innovation", Keywords: []string{
			"innovation", "future", "next era", "emerging", "transformative",
			"customizing", "rebooting"}},
		{Tag: "Leadership", Keywords: []string{
			"leadership", "ai policy", "school leadership", "administration",
			"strategic planning"}},
		{Tag: "Metacognition", Keywords: []string{
			"metacognition", "self-awareness", "reflection",
			"learning process", "strategic learner"}},
		{Tag: "Pedagogy", Keywords: []string{
			"pedagogy", "teaching", "learning", "instruction", "educator",
			"classroom", "student engagement", "inquiry-based", "lesson plan",
			"learning science", "place-based learning", "cognitive load",
			"self determination theory", "experiential learning", "constructivist",
			"active learning", "skill development"}},
		{Tag: "Professional Development", Keywords: []string{
			"professional development", "pd", "teacher training",
			"communities of practice", "faculty development",
			"teacher-led", "lifelong learning"}},
		{Tag: "Research", Keywords: []string{
			"research", "investigation", "inquiry", "data analysis", "evidence"}},
		{Tag: "Simulations", Keywords: []string{
			"simulation", "investigation", "role-playing", "interactive",
			"game-based learning"}},
		{Tag: "STEM", Keywords: []string{
			"stem", "science", "programming", "computer science"}},
		{Tag: "Student Engagement", Keywords: []string{
			"student engagement", "buy-in", "participation",
			"collaboration", "immersive", "experience", "student agency",
			"motivation"}},
		{Tag: "Technology", Keywords: []string{
			"technology", "digital", "tool", "platform", "simulations",
			"online", "apps", "software", "digital habits", "screenagers"}},
		{Tag: "Wellbeing", Keywords: []string{
			"dependency", "connection", "wellbeing", "mental health",
			"dopamine", "human connection", "digital dependency",
			"screen time", "student support"}},
		{Tag: "Writing", Keywords: []string{
			"writing", "composition", "prose", "essay", "rhetorical", "syntax",
			"academic writing", "writing assignment"}},
	}
}
