package services

import (
	"fmt"

	"symposium-session-pipeline/internal/models"
)

// ConsistencyReport lists defects found when cross-checking the published
// sessions and schedule views. Findings are operator-review items, not
// errors; a report with findings still exits zero.
type ConsistencyReport struct {
	Findings []string
}

// Add records one finding.
func (cr *ConsistencyReport) Add(format string, args ...interface{}) {
	cr.Findings = append(cr.Findings, fmt.Sprintf(format, args...))
}

// OK reports whether the check found no defects.
func (cr *ConsistencyReport) OK() bool {
	return len(cr.Findings) == 0
}

// VerifyConsistency cross-checks the canonical session collection against
// the derived schedule view: unique IDs, placeholder values, occurrence
// slots from the known set, and agreement between the two artifacts.
func VerifyConsistency(sessions []*models.Session, schedule *models.ScheduleOutput) *ConsistencyReport {
	report := &ConsistencyReport{}

	seenIDs := make(map[string]bool)
	for _, s := range sessions {
		if seenIDs[s.ID] {
			report.Add("duplicate session ID %s", s.ID)
		}
		seenIDs[s.ID] = true

		if s.Title == "" {
			report.Add("session %s has an empty title", s.ID)
		}
		if !s.IsSpecialEvent && s.Presenter == "" {
			report.Add("session %s (%s) has no presenter", s.ID, s.Title)
		}
		if s.Location == models.PlaceholderTBD || s.Location == "" {
			report.Add("session %s (%s) has TBD location", s.ID, s.Title)
		}
		if s.Location == models.PlaceholderEmail {
			report.Add("session %s (%s) has 'anonymous' as location", s.ID, s.Title)
		}
		if s.TimeBlock == models.PlaceholderTBD || s.TimeBlock == "" {
			report.Add("session %s (%s) has TBD time block", s.ID, s.Title)
		}

		for _, occ := range s.Occurrences {
			if !models.IsKnownSlot(occ.TimeBlock) {
				report.Add("session %s occurrence uses unknown time block %q", s.ID, occ.TimeBlock)
			}
		}
	}

	if schedule == nil {
		return report
	}

	// Every scheduled session must appear in the grid view, under each of
	// its occurrences.
	entries := make(map[string]bool)
	for _, e := range schedule.Sessions {
		entries[e.SessionID+"|"+e.Room+"|"+e.TimeSlot] = true
	}
	for _, s := range sessions {
		if s.IsSpecialEvent {
			continue
		}
		for _, occ := range s.Occurrences {
			if !entries[s.ID+"|"+occ.Location+"|"+occ.TimeBlock] {
				report.Add("session %s occurrence (%s, %s) missing from schedule view",
					s.ID, occ.Location, occ.TimeBlock)
			}
		}
	}

	// And every grid entry must reference a known session.
	for _, e := range schedule.Sessions {
		if e.SessionID != "" && !seenIDs[e.SessionID] {
			report.Add("schedule entry %q references unknown session %s", e.Title, e.SessionID)
		}
	}

	return report
}
