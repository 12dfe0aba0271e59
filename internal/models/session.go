package models

import "time"

// Session represents a single symposium session built from the roster,
// optionally enriched with schedule occurrences from the grid.
type Session struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Presenter    string `json:"presenter"`
	Organization string `json:"organization,omitempty"`
	Email        string `json:"email,omitempty"`
	Description  string `json:"description"`
	Preview      string `json:"preview"`

	// Classification
	Strand     string `json:"strand"`     // strand1|strand2|strand3|strand4|special
	StrandName string `json:"strandName"` // "1: AI in the Classroom", etc.
	Type       string `json:"type"`       // workshop|presentation|discussion|panel|keynote|special|default
	TypeName   string `json:"typeName"`

	// Topical labels, always sorted and duplicate-free
	Tags []string `json:"tags"`

	// Scheduling. Occurrences is the canonical list; TimeBlock/Location
	// mirror the first occurrence for single-slot rendering.
	Occurrences []Occurrence `json:"occurrences"`
	TimeBlock   string       `json:"timeBlock"`
	Location    string       `json:"location"`

	IsSpecialEvent bool `json:"isSpecialEvent"`
}

// Occurrence is one (room, time block) scheduling of a session.
// A repeated session carries one occurrence per slot it runs in.
type Occurrence struct {
	Location  string `json:"location"`
	TimeBlock string `json:"timeBlock"`
}

// ScheduleOutput is the grid-indexed view consumed by the calendar and
// schedule pages.
type ScheduleOutput struct {
	TimeSlots []TimeSlot      `json:"timeSlots"`
	Rooms     []string        `json:"rooms"`
	Sessions  []ScheduleEntry `json:"sessions"`
}

// TimeSlot describes one named period of the event schedule.
type TimeSlot struct {
	Name      string `json:"name"`      // e.g. "Slot 2 (11:30-12:30)"
	TimeRange string `json:"timeRange"` // e.g. "11:30 - 12:30"
}

// ScheduleEntry places one session occurrence in a (timeSlot, room) cell.
type ScheduleEntry struct {
	TimeSlot   string   `json:"timeSlot"`
	Room       string   `json:"room"`
	SessionID  string   `json:"sessionId"`
	Title      string   `json:"title"`
	Presenter  string   `json:"presenter"`
	Preview    string   `json:"preview"`
	Strand     string   `json:"strand"`
	StrandName string   `json:"strandName"`
	Type       string   `json:"type"`
	TypeName   string   `json:"typeName"`
	Tags       []string `json:"tags"`
}

// RunReport collects the diagnostics of a single pipeline run. Entries here
// are data-quality findings for operator review, never hard errors.
type RunReport struct {
	RunID         string    `json:"runId"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
	RosterRows    int       `json:"rosterRows"`
	Sessions      int       `json:"sessions"`
	SpecialEvents int       `json:"specialEvents"`

	SkippedRows      []string `json:"skippedRows,omitempty"`
	FilteredByStrand []string `json:"filteredByStrand,omitempty"`
	Unscheduled      []string `json:"unscheduled,omitempty"`
	UnmatchedEntries []string `json:"unmatchedEntries,omitempty"`
	DoubleBookings   []string `json:"doubleBookings,omitempty"`
	MissingFields    []string `json:"missingFields,omitempty"`
}

// Strand codes
const (
	Strand1       = "strand1"
	Strand2       = "strand2"
	Strand3       = "strand3"
	Strand4       = "strand4"
	StrandSpecial = "special"
)

// Session type codes
const (
	TypeWorkshop     = "workshop"
	TypePresentation = "presentation"
	TypeDiscussion   = "discussion"
	TypePanel        = "panel"
	TypeKeynote      = "keynote"
	TypeSpecial      = "special"
	TypeDefault      = "default"
)

// Placeholder values used when the roster is silent
const (
	PlaceholderTBD   = "TBD"
	PlaceholderEmail = "anonymous"
)
