package models

import (
	"fmt"
	"strings"
)

// strandNames maps strand numbers to their display names. Unknown numbers
// render as "N: Unknown Strand".
var strandNames = map[string]string{
	"1": "1: AI in the Classroom",
	"2": "2: Human-Centered Innovation",
	"3": "3: Preparing for the Changing Workforce",
	"4": "4: Ethics & Creative Rights",
}

// slotTimes maps known time-slot labels to their display time ranges.
// Labels not present here are passed through verbatim.
var slotTimes = map[string]string{
	"Slot 1 (10:15-11:15)": "10:15 - 11:15",
	"Slot 2 (11:30-12:30)": "11:30 - 12:30",
	"Slot 3 (1:30-2:30)":   "1:30 - 2:30",
	"Slot 4 (2:45-3:45)":   "2:45 - 3:45",
	"8:00-9:00":            "8:00 - 9:00",
	"9:00-10:00":           "9:00 - 10:00",
	"3:45-4:30":            "3:45 - 4:30",
}

// GetStrandName returns the display name for a strand number.
func GetStrandName(strandNumber string) string {
	if name, ok := strandNames[strandNumber]; ok {
		return name
	}
	return fmt.Sprintf("%s: Unknown Strand", strandNumber)
}

// GetTimeForSlot converts a slot label to its display time range.
func GetTimeForSlot(slotName string) string {
	if timeRange, ok := slotTimes[slotName]; ok {
		return timeRange
	}
	return slotName
}

// IsKnownSlot reports whether a time-block label belongs to the fixed set of
// known slots, either as a raw label or as a converted time range.
func IsKnownSlot(label string) bool {
	if _, ok := slotTimes[label]; ok {
		return true
	}
	for _, timeRange := range slotTimes {
		if timeRange == label {
			return true
		}
	}
	return false
}

// KnownSlotLabels returns the raw slot labels in display order.
func KnownSlotLabels() []string {
	return []string{
		"8:00-9:00",
		"9:00-10:00",
		"Slot 1 (10:15-11:15)",
		"Slot 2 (11:30-12:30)",
		"Slot 3 (1:30-2:30)",
		"Slot 4 (2:45-3:45)",
		"3:45-4:30",
	}
}

// ValidateSessionType checks if the session type code is valid.
func ValidateSessionType(sessionType string) bool {
	validTypes := []string{
		TypeWorkshop,
		TypePresentation,
		TypeDiscussion,
		TypePanel,
		TypeKeynote,
		TypeSpecial,
		TypeDefault,
	}

	for _, validType := range validTypes {
		if sessionType == validType {
			return true
		}
	}
	return false
}

// ValidateStrand checks if the strand code is valid.
func ValidateStrand(strand string) bool {
	validStrands := []string{
		Strand1,
		Strand2,
		Strand3,
		Strand4,
		StrandSpecial,
	}

	for _, validStrand := range validStrands {
		if strand == validStrand {
			return true
		}
	}
	return false
}

// GetTypeDisplayName returns a human-readable name for a session type code.
func GetTypeDisplayName(sessionType string) string {
	displayNames := map[string]string{
		TypeWorkshop:     "Workshop",
		TypePresentation: "Presentation and Q&A",
		TypeDiscussion:   "Facilitated Discussion",
		TypePanel:        "Panel",
		TypeKeynote:      "Keynote",
		TypeSpecial:      "Special Event",
		TypeDefault:      "Session",
	}

	if displayName, exists := displayNames[sessionType]; exists {
		return displayName
	}

	return sessionType
}

// GenerateSpecialEventID creates an identifier for a schedule entry that is
// not a submitted session (keynote, arrival, closing).
func GenerateSpecialEventID(counter int, title string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if len(slug) > 20 {
		slug = slug[:20]
	}
	return fmt.Sprintf("special_%d_%s", counter, slug)
}

// FirstOccurrence returns the session's first occurrence, or TBD placeholders
// when the session is unscheduled.
func (s *Session) FirstOccurrence() Occurrence {
	if len(s.Occurrences) > 0 {
		return s.Occurrences[0]
	}
	return Occurrence{Location: PlaceholderTBD, TimeBlock: PlaceholderTBD}
}

// IsScheduled reports whether the session has at least one occurrence, or a
// direct time block in the special-event case.
func (s *Session) IsScheduled() bool {
	if s.IsSpecialEvent {
		return s.TimeBlock != "" && s.TimeBlock != PlaceholderTBD
	}
	return len(s.Occurrences) > 0
}
