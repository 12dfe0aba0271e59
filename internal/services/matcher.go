package services

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/models"
	"symposium-session-pipeline/internal/tabular"
)

// ScheduleMatcherService resolves schedule-grid cells to session records.
// The grid has time-slot rows and room columns; cells carry either a bare
// session ID or free "Presenter: Title" text.
type ScheduleMatcherService struct {
	cfg *config.Config
}

// GridResult is the outcome of walking one schedule grid.
type GridResult struct {
	// Occurrences accumulates (room, timeBlock) pairs per session ID.
	Occurrences map[string][]models.Occurrence
	// SpecialEvents are non-ID cells: keynote, arrival, closing, etc.
	SpecialEvents []SpecialEvent
	// Rooms are the grid's room columns in order.
	Rooms []string
	// TimeSlots are the grid's slot labels in row order.
	TimeSlots []string
	// Unmatched lists title-keyed cells that resolved to no session.
	Unmatched []string
}

// SpecialEvent is a schedule entry that is not a submitted session.
type SpecialEvent struct {
	Title     string
	Location  string
	TimeBlock string
}

var presenterPrefixRe = regexp.MustCompile(`^(.+?):\s*`)
var punctuationRe = regexp.MustCompile(`[?!:;.,]`)

// specialEventKeywords mark grid titles that are schedule fixtures rather
// than sessions needing a roster match.
var specialEventKeywords = []string{"arrival", "keynote", "closing", "registration", "lunch", "break"}

// NewScheduleMatcherService creates a schedule matcher.
func NewScheduleMatcherService(cfg *config.Config) *ScheduleMatcherService {
	return &ScheduleMatcherService{cfg: cfg}
}

// MatchByID walks an ID-keyed grid. Integer cells become occurrences under
// that session ID; non-integer cells are treated as special events carrying
// their literal text as the title.
func (sms *ScheduleMatcherService) MatchByID(grid *tabular.Table) *GridResult {
	result := &GridResult{Occurrences: make(map[string][]models.Occurrence)}
	result.Rooms = roomColumns(grid)

	for _, row := range grid.Rows {
		slotLabel := strings.TrimSpace(grid.Cell(row, 0))
		if slotLabel == "" {
			continue
		}
		result.TimeSlots = append(result.TimeSlots, slotLabel)
		timeBlock := models.GetTimeForSlot(slotLabel)

		for col := 1; col < len(grid.Headers); col++ {
			cell := strings.TrimSpace(grid.Cell(row, col))
			if cell == "" {
				continue
			}
			room := strings.TrimSpace(grid.Headers[col])

			if id, err := strconv.Atoi(cell); err == nil {
				key := strconv.Itoa(id)
				result.Occurrences[key] = append(result.Occurrences[key], models.Occurrence{
					Location:  room,
					TimeBlock: timeBlock,
				})
				continue
			}

			result.SpecialEvents = append(result.SpecialEvents, SpecialEvent{
				Title:     cell,
				Location:  room,
				TimeBlock: timeBlock,
			})
		}
	}

	return result
}

// MatchByTitle walks a title-keyed grid, resolving each cell against the
// session collection through a chain of strategies: exact normalized title,
// containment, then similarity ratio against the configured threshold.
// Unresolved cells land in the Unmatched report, never silently dropped.
func (sms *ScheduleMatcherService) MatchByTitle(grid *tabular.Table, sessions []*models.Session) *GridResult {
	result := &GridResult{Occurrences: make(map[string][]models.Occurrence)}
	result.Rooms = roomColumns(grid)

	for _, row := range grid.Rows {
		slotLabel := strings.TrimSpace(grid.Cell(row, 0))
		if slotLabel == "" {
			continue
		}
		result.TimeSlots = append(result.TimeSlots, slotLabel)
		timeBlock := models.GetTimeForSlot(slotLabel)

		for col := 1; col < len(grid.Headers); col++ {
			cell := strings.TrimSpace(grid.Cell(row, col))
			if cell == "" {
				continue
			}
			room := strings.TrimSpace(grid.Headers[col])

			if isSpecialEventTitle(cell) {
				result.SpecialEvents = append(result.SpecialEvents, SpecialEvent{
					Title:     cell,
					Location:  room,
					TimeBlock: timeBlock,
				})
				continue
			}

			session := sms.ResolveTitle(cell, sessions)
			if session == nil {
				log.Printf("[MATCH] No session matches grid cell %q (%s, %s)", cell, room, slotLabel)
				result.Unmatched = append(result.Unmatched,
					fmt.Sprintf("%s (%s, %s)", cell, room, slotLabel))
				continue
			}

			result.Occurrences[session.ID] = append(result.Occurrences[session.ID], models.Occurrence{
				Location:  room,
				TimeBlock: timeBlock,
			})
		}
	}

	return result
}

// ResolveTitle finds the session matching a grid cell's title text, or nil.
func (sms *ScheduleMatcherService) ResolveTitle(cellText string, sessions []*models.Session) *models.Session {
	// Strip any "Presenter: " prefix before matching.
	title := presenterPrefixRe.ReplaceAllString(cellText, "")
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return nil
	}

	// Exact normalized match first.
	for _, s := range sessions {
		if NormalizeTitle(s.Title) == normalized {
			return s
		}
	}

	// Containment: grid titles are often truncated.
	for _, s := range sessions {
		st := NormalizeTitle(s.Title)
		if st == "" {
			continue
		}
		if strings.Contains(st, normalized) || strings.Contains(normalized, st) {
			return s
		}
	}

	// Similarity ratio, best score at or above the threshold wins.
	var best *models.Session
	bestScore := 0.0
	for _, s := range sessions {
		score := SimilarityRatio(normalized, NormalizeTitle(s.Title))
		if score >= sms.cfg.SimilarityThreshold && score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

// ApplyOccurrences writes grid occurrences onto the session collection and
// reports unscheduled sessions and grid IDs with no session.
func (sms *ScheduleMatcherService) ApplyOccurrences(sessions []*models.Session, result *GridResult) (unscheduled, unknownIDs []string) {
	byID := make(map[string]*models.Session, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}

	for id, occs := range result.Occurrences {
		session, ok := byID[id]
		if !ok {
			occ := occs[0]
			unknownIDs = append(unknownIDs,
				fmt.Sprintf("ID %s (%s, %s)", id, occ.Location, occ.TimeBlock))
			continue
		}
		session.Occurrences = occs
		first := session.FirstOccurrence()
		session.Location = first.Location
		session.TimeBlock = first.TimeBlock
	}

	for _, s := range sessions {
		if !s.IsSpecialEvent && len(s.Occurrences) == 0 {
			log.Printf("[MATCH] Session %s (%s) is unscheduled", s.ID, s.Title)
			unscheduled = append(unscheduled, fmt.Sprintf("ID %s: %s", s.ID, s.Title))
		}
	}

	return unscheduled, unknownIDs
}

// DetectDoubleBookings reports room+time cells claimed by more than one
// session.
func (sms *ScheduleMatcherService) DetectDoubleBookings(sessions []*models.Session) []string {
	claimed := make(map[string]string)
	var conflicts []string

	for _, s := range sessions {
		occs := s.Occurrences
		if s.IsSpecialEvent {
			occs = []models.Occurrence{{Location: s.Location, TimeBlock: s.TimeBlock}}
		}
		for _, occ := range occs {
			key := occ.Location + "|" + occ.TimeBlock
			if other, ok := claimed[key]; ok {
				conflicts = append(conflicts,
					fmt.Sprintf("%s at %s claimed by %s and %s", occ.Location, occ.TimeBlock, other, s.ID))
				continue
			}
			claimed[key] = s.ID
		}
	}

	return conflicts
}

// NormalizeTitle prepares a title for matching: HTML entities and curly
// quotes back to plain characters, punctuation stripped, lower-cased.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"&quot;", `"`,
		"&#x27;", "'",
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
		"–", "-",
		"—", "-",
	)
	normalized := replacer.Replace(title)
	normalized = punctuationRe.ReplaceAllString(normalized, "")
	return strings.ToLower(strings.TrimSpace(normalized))
}

func isSpecialEventTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range specialEventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func roomColumns(grid *tabular.Table) []string {
	var rooms []string
	for i := 1; i < len(grid.Headers); i++ {
		if room := strings.TrimSpace(grid.Headers[i]); room != "" {
			rooms = append(rooms, room)
		}
	}
	return rooms
}
