package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"symposium-session-pipeline/internal/config"
	"symposium-session-pipeline/internal/models"
	"symposium-session-pipeline/internal/tabular"
)

// PipelineService runs the whole normalization pipeline: roster in, schedule
// grid in, canonical session collection plus diagnostics out. Each run
// rebuilds the collection wholesale; there is no incremental update.
type PipelineService struct {
	cfg        *config.Config
	normalizer *TextNormalizerService
	builder    *SessionBuilderService
	matcher    *ScheduleMatcherService
}

// PipelineResult is the output of one pipeline run.
type PipelineResult struct {
	Sessions []*models.Session
	Report   *models.RunReport
}

// NewPipelineService wires the pipeline stages together.
func NewPipelineService(cfg *config.Config) *PipelineService {
	normalizer := NewTextNormalizerService(cfg)
	return &PipelineService{
		cfg:        cfg,
		normalizer: normalizer,
		builder:    NewSessionBuilderService(cfg, normalizer),
		matcher:    NewScheduleMatcherService(cfg),
	}
}

// Run loads the roster and grid files and produces the session collection.
// gridByTitle selects title-keyed cell resolution instead of ID-keyed.
func (pls *PipelineService) Run(rosterPath, gridPath string, gridByTitle bool) (*PipelineResult, error) {
	roster, err := tabular.Load(rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	log.Printf("[PIPELINE] Read %d roster rows from %s", len(roster.Rows), rosterPath)

	var grid *tabular.Table
	if gridPath != "" {
		grid, err = tabular.Load(gridPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load schedule grid: %w", err)
		}
		log.Printf("[PIPELINE] Read %d schedule rows from %s", len(grid.Rows), gridPath)
	}

	return pls.RunTables(roster, grid, gridByTitle)
}

// RunTables runs the pipeline over already-loaded tables.
func (pls *PipelineService) RunTables(roster, grid *tabular.Table, gridByTitle bool) (*PipelineResult, error) {
	report := &models.RunReport{
		RunID:      uuid.New().String(),
		StartedAt:  time.Now().UTC(),
		RosterRows: len(roster.Rows),
	}

	extractor := NewFieldExtractorService(pls.cfg, roster)

	// ID-keyed grids can be walked before sessions exist; title-keyed
	// grids need the built sessions to resolve against.
	var gridResult *GridResult
	if grid != nil && !gridByTitle {
		gridResult = pls.matcher.MatchByID(grid)
	}

	occurrences := map[string][]models.Occurrence{}
	if gridResult != nil {
		occurrences = gridResult.Occurrences
	}

	var sessions []*models.Session
	for i, row := range roster.Rows {
		result := pls.builder.Build(extractor, row, occurrences)
		if result.Session == nil {
			if result.Filtered {
				report.FilteredByStrand = append(report.FilteredByStrand,
					fmt.Sprintf("row %d: %s", i+2, result.Skipped))
			} else {
				log.Printf("[PIPELINE] Skipping roster row %d: %s", i+2, result.Skipped)
				report.SkippedRows = append(report.SkippedRows,
					fmt.Sprintf("row %d: %s", i+2, result.Skipped))
			}
			continue
		}
		for _, field := range result.MissingFields {
			report.MissingFields = append(report.MissingFields,
				fmt.Sprintf("session %s: missing %s", result.Session.ID, field))
		}
		sessions = append(sessions, result.Session)
	}

	if grid != nil && gridByTitle {
		gridResult = pls.matcher.MatchByTitle(grid, sessions)
		report.UnmatchedEntries = gridResult.Unmatched
	}

	if gridResult != nil {
		unscheduled, unknownIDs := pls.matcher.ApplyOccurrences(sessions, gridResult)
		report.Unscheduled = unscheduled
		report.UnmatchedEntries = append(report.UnmatchedEntries, unknownIDs...)

		for _, event := range gridResult.SpecialEvents {
			sessions = append(sessions,
				pls.builder.BuildSpecialEvent(len(sessions)+1, event.Title, event.Location, event.TimeBlock))
		}
	}

	report.DoubleBookings = pls.matcher.DetectDoubleBookings(sessions)

	for _, s := range sessions {
		if s.IsSpecialEvent {
			report.SpecialEvents++
		} else {
			report.Sessions++
		}
	}
	report.FinishedAt = time.Now().UTC()

	logRunSummary(report)

	return &PipelineResult{Sessions: sessions, Report: report}, nil
}

func logRunSummary(report *models.RunReport) {
	log.Printf("[PIPELINE] === RUN SUMMARY ===")
	log.Printf("[PIPELINE] Regular sessions: %d, special events: %d", report.Sessions, report.SpecialEvents)
	log.Printf("[PIPELINE] Skipped rows: %d, filtered by strand: %d", len(report.SkippedRows), len(report.FilteredByStrand))
	log.Printf("[PIPELINE] Unscheduled sessions: %d", len(report.Unscheduled))
	log.Printf("[PIPELINE] Unmatched schedule entries: %d", len(report.UnmatchedEntries))
	log.Printf("[PIPELINE] Double bookings: %d", len(report.DoubleBookings))
	if len(report.MissingFields) > 0 {
		log.Printf("[PIPELINE] Missing required fields: %d", len(report.MissingFields))
	}
}
