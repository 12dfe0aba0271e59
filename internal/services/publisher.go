package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/models"
)

// PublisherService serializes the canonical session collection into the
// JSON artifacts the website pages consume. Outputs are full regenerations:
// rerunning on unchanged input produces identical files.
type PublisherService struct {
	cfg *config.Config
}

// NewPublisherService creates a publisher.
func NewPublisherService(cfg *config.Config) *PublisherService {
	return &PublisherService{cfg: cfg}
}

// WriteSessions writes the canonical sessions.json: a JSON array of session
// records, one per session, occurrences as a list. With FlattenOccurrences
// set, the legacy projection is written instead: one entry per occurrence,
// repeats carrying suffixed IDs.
func (ps *PublisherService) WriteSessions(sessions []*models.Session, path string) error {
	out := sessions
	if ps.cfg.FlattenOccurrences {
		out = FlattenSessions(sessions)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions to JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("[PUBLISH] Wrote %d entries to %s", len(out), path)
	return nil
}

// FlattenSessions expands multi-occurrence sessions into one flat record
// per occurrence. The first occurrence keeps the original ID; repeats get
// "<id>-2", "<id>-3", and so on.
func FlattenSessions(sessions []*models.Session) []*models.Session {
	var flat []*models.Session
	for _, s := range sessions {
		if s.IsSpecialEvent || len(s.Occurrences) <= 1 {
			flat = append(flat, s)
			continue
		}
		for i, occ := range s.Occurrences {
			dup := *s
			if i > 0 {
				dup.ID = s.ID + "-" + strconv.Itoa(i+1)
			}
			dup.Occurrences = []models.Occurrence{occ}
			dup.Location = occ.Location
			dup.TimeBlock = occ.TimeBlock
			flat = append(flat, &dup)
		}
	}
	return flat
}

// BuildSchedule derives the grid-indexed schedule view: time slots, rooms,
// and one entry per (slot, room) occurrence. A session scheduled in two
// slots appears under both cells.
func (ps *PublisherService) BuildSchedule(sessions []*models.Session) *models.ScheduleOutput {
	slotSet := make(map[string]bool)
	roomSet := make(map[string]bool)
	schedule := &models.ScheduleOutput{Sessions: []models.ScheduleEntry{}}

	for _, s := range sessions {
		occs := s.Occurrences
		if s.IsSpecialEvent {
			occs = []models.Occurrence{{Location: s.Location, TimeBlock: s.TimeBlock}}
		}
		for _, occ := range occs {
			if occ.TimeBlock != "" && occ.TimeBlock != models.PlaceholderTBD {
				slotSet[occ.TimeBlock] = true
			}
			if occ.Location != "" && occ.Location != models.PlaceholderTBD {
				roomSet[occ.Location] = true
			}
			if s.IsSpecialEvent {
				continue
			}
			schedule.Sessions = append(schedule.Sessions, models.ScheduleEntry{
				TimeSlot:   occ.TimeBlock,
				Room:       occ.Location,
				SessionID:  s.ID,
				Title:      s.Title,
				Presenter:  s.Presenter,
				Preview:    s.Preview,
				Strand:     s.Strand,
				StrandName: s.StrandName,
				Type:       s.Type,
				TypeName:   s.TypeName,
				Tags:       s.Tags,
			})
		}
	}

	for slot := range slotSet {
		schedule.TimeSlots = append(schedule.TimeSlots, models.TimeSlot{
			Name:      slot,
			TimeRange: models.GetTimeForSlot(slot),
		})
	}
	sort.Slice(schedule.TimeSlots, func(i, j int) bool {
		ri, rj := slotRank(schedule.TimeSlots[i].Name), slotRank(schedule.TimeSlots[j].Name)
		if ri != rj {
			return ri < rj
		}
		return schedule.TimeSlots[i].Name < schedule.TimeSlots[j].Name
	})

	for room := range roomSet {
		schedule.Rooms = append(schedule.Rooms, room)
	}
	sort.Strings(schedule.Rooms)

	return schedule
}

// slotRank orders time-slot labels chronologically across the event day.
// Unknown labels sort after the known slots, alphabetically among themselves.
func slotRank(name string) int {
	labels := models.KnownSlotLabels()
	for i, label := range labels {
		if name == label || name == models.GetTimeForSlot(label) {
			return i
		}
	}
	return len(labels)
}

// WriteSchedule writes the grid-indexed schedule.json view.
func (ps *PublisherService) WriteSchedule(sessions []*models.Session, path string) error {
	schedule := ps.BuildSchedule(sessions)

	data, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule to JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("[PUBLISH] Wrote schedule with %d entries to %s", len(schedule.Sessions), path)
	return nil
}

// WriteReport writes the run diagnostics report.
func (ps *PublisherService) WriteReport(report *models.RunReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report to JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// LoadSessions reads a previously published sessions.json.
func LoadSessions(path string) ([]*models.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var sessions []*models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return sessions, nil
}

// LoadSchedule reads a previously published schedule.json.
func LoadSchedule(path string) (*models.ScheduleOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var schedule models.ScheduleOutput
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &schedule, nil
}
