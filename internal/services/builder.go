package services

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/models"
)

// SessionBuilderService assembles canonical session records from extracted
// roster rows: identity, strand and type classification, text cleanup, tag
// derivation, and schedule occurrences.
type SessionBuilderService struct {
	cfg        *config.Config
	normalizer *TextNormalizerService
}

// typeRule maps a lower-cased phrase to a session type code. Rules are
// evaluated in order, most specific phrase first, so a generic keyword never
// shadows a longer pattern that contains it.
type typeRule struct {
	phrase string
	code   string
}

var typeRules = []typeRule{
	{"presentation but then participate in our learning lab protocol", models.TypePresentation},
	{"a combination - some presentation, and some chances for participants to engage", models.TypeWorkshop},
	// The roster data spells this both ways.
	{"a combination of a workshop and facilitated discussion", models.TypeWorkshop},
	{"a combination of a workshop and facilitated dicussion", models.TypeWorkshop},
	{"presentation with q&a and application activity", models.TypePresentation},
	{"presentation and q&a", models.TypePresentation},
	{"facilitated discussion", models.TypeDiscussion},
	{"workshop", models.TypeWorkshop},
	{"presentation", models.TypePresentation},
	{"discussion", models.TypeDiscussion},
	{"panel", models.TypePanel},
	{"keynote", models.TypeKeynote},
}

var strandNumberRe = regexp.MustCompile(`Strand\s*(\d+)`)

// NewSessionBuilderService creates a session builder.
func NewSessionBuilderService(cfg *config.Config, normalizer *TextNormalizerService) *SessionBuilderService {
	return &SessionBuilderService{cfg: cfg, normalizer: normalizer}
}

// BuildResult is the outcome of building one roster row.
type BuildResult struct {
	Session *models.Session
	// Skipped explains why no session was produced (unparsable ID,
	// strand filtered out). Empty when Session is set.
	Skipped string
	// Filtered marks rows dropped by the strand filter rather than by a
	// data defect.
	Filtered bool
	// MissingFields lists required fields the row lacked.
	MissingFields []string
}

// Build assembles one session from a roster row. Occurrences come from the
// matcher's accumulated grid assignments, keyed by session ID.
func (sbs *SessionBuilderService) Build(extractor *FieldExtractorService, row []string, occurrences map[string][]models.Occurrence) BuildResult {
	rawID := extractor.Extract(row, "id")
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return BuildResult{Skipped: "unparsable session ID: " + rawID}
	}

	session := &models.Session{
		ID:             strconv.Itoa(id),
		IsSpecialEvent: false,
	}

	strandNumber := sbs.classifyStrand(extractor.Extract(row, "strand"))
	if !sbs.cfg.KeepsStrand(strandNumber) {
		return BuildResult{
			Skipped:  "strand " + strandNumber + " excluded by filter",
			Filtered: true,
		}
	}
	session.Strand = "strand" + strandNumber
	session.StrandName = models.GetStrandName(strandNumber)

	session.Type = sbs.ClassifyType(extractor.Extract(row, "type"))
	session.TypeName = models.GetTypeDisplayName(session.Type)

	var missing []string

	session.Title = sbs.normalizer.Clean(extractor.Extract(row, "title"))
	if session.Title == "" {
		missing = append(missing, "title")
	}

	session.Presenter = sbs.normalizer.Clean(extractor.Extract(row, "presenter"))
	if session.Presenter == "" {
		missing = append(missing, "presenter")
	}

	session.Organization = sbs.normalizer.Clean(extractor.Extract(row, "organization"))
	session.Email = extractor.Extract(row, "email")
	session.Description = sbs.normalizer.Clean(extractor.Extract(row, "description"))
	session.Preview = sbs.normalizer.Preview(session.Description)

	// Explicit tags column wins; otherwise derive from title+description.
	if extractor.Has(row, "tags") {
		session.Tags = sbs.mergeTags(
			sbs.normalizer.SplitTags(sbs.normalizer.FixMojibake(extractor.Extract(row, "tags"))),
			sbs.normalizer.DeriveTags(session.Title, session.Description))
	} else {
		session.Tags = sbs.normalizer.DeriveTags(session.Title, session.Description)
	}
	if session.Tags == nil {
		session.Tags = []string{}
	}

	// No log here for the empty case: title-keyed grids are matched after
	// the build pass, so the matcher reports unscheduled sessions once
	// occurrences are final.
	if occs, ok := occurrences[session.ID]; ok && len(occs) > 0 {
		session.Occurrences = occs
	} else {
		session.Occurrences = []models.Occurrence{}
	}
	first := session.FirstOccurrence()
	session.Location = first.Location
	session.TimeBlock = first.TimeBlock

	return BuildResult{Session: session, MissingFields: missing}
}

// BuildSpecialEvent wraps a non-session schedule entry (keynote, arrival,
// closing) as a session record. Special events carry their time and location
// directly and bypass strand/type classification.
func (sbs *SessionBuilderService) BuildSpecialEvent(counter int, title, location, timeBlock string) *models.Session {
	title = sbs.normalizer.Clean(title)
	return &models.Session{
		ID:             models.GenerateSpecialEventID(counter, title),
		Strand:         models.StrandSpecial,
		StrandName:     "Special Event",
		Type:           models.TypeSpecial,
		TypeName:       "Special Event",
		Title:          title,
		Description:    "Special event: " + title,
		Preview:        "Special event: " + title,
		Tags:           []string{"Special Event"},
		Occurrences:    []models.Occurrence{},
		Location:       location,
		TimeBlock:      timeBlock,
		IsSpecialEvent: true,
	}
}

// classifyStrand extracts a strand number from free text: an explicit
// "Strand N" numeral first, then keyword rules, defaulting to strand 1.
func (sbs *SessionBuilderService) classifyStrand(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "1"
	}

	if m := strandNumberRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(text, "1") || strings.Contains(lower, "ai") || strings.Contains(lower, "classroom"):
		return "1"
	case strings.Contains(text, "2") || strings.Contains(lower, "human") || strings.Contains(lower, "innovation"):
		return "2"
	case strings.Contains(text, "3") || strings.Contains(lower, "leadership") || strings.Contains(lower, "workforce"):
		return "3"
	case strings.Contains(text, "4") || strings.Contains(lower, "ethic") || strings.Contains(lower, "rights"):
		return "4"
	}

	log.Printf("[BUILD] Unknown strand value %q, defaulting to strand 1", text)
	return "1"
}

// ClassifyType maps a free-text session format onto a type code using the
// ordered phrase rules; unmatched text gets the configured default.
func (sbs *SessionBuilderService) ClassifyType(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return sbs.cfg.DefaultSessionType
	}

	for _, rule := range typeRules {
		if strings.Contains(lower, rule.phrase) {
			return rule.code
		}
	}

	log.Printf("[BUILD] Unknown session type %q, defaulting to %s", text, sbs.cfg.DefaultSessionType)
	return sbs.cfg.DefaultSessionType
}

// mergeTags unions explicit and derived tags, sorted and deduplicated.
func (sbs *SessionBuilderService) mergeTags(explicit, derived []string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, t := range append(append([]string{}, explicit...), derived...) {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
