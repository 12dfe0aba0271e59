package cli

import (
	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/services"
)

var (
	rosterPath  string
	gridPath    string
	gridByTitle bool
	sessionsOut string
	reportOut   string
	flattenFlag bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build sessions.json from the roster and schedule grid",
	Long: "Reads the session roster (CSV or XLSX) plus the schedule grid, " +
		"normalizes every row into a canonical session record, attaches " +
		"schedule occurrences, and writes the canonical sessions.json.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("loading config", err)
		}
		cfg.FlattenOccurrences = flattenFlag

		pipeline := services.NewPipelineService(cfg)
		result, err := pipeline.Run(rosterPath, gridPath, gridByTitle)
		if err != nil {
			exitErr("running pipeline", err)
		}

		publisher := services.NewPublisherService(cfg)
		if err := publisher.WriteSessions(result.Sessions, sessionsOut); err != nil {
			exitErr("writing sessions", err)
		}
		if reportOut != "" {
			if err := publisher.WriteReport(result.Report, reportOut); err != nil {
				exitErr("writing run report", err)
			}
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&rosterPath, "roster", "sessions.csv", "Roster file (CSV or XLSX)")
	generateCmd.Flags().StringVar(&gridPath, "grid", "", "Schedule grid file (time-slot rows, room columns)")
	generateCmd.Flags().BoolVar(&gridByTitle, "by-title", false, "Grid cells hold presenter:title text instead of session IDs")
	generateCmd.Flags().StringVarP(&sessionsOut, "out", "o", "sessions.json", "Canonical sessions output file")
	generateCmd.Flags().StringVar(&reportOut, "report", "", "Write the run diagnostics report to this file")
	generateCmd.Flags().BoolVar(&flattenFlag, "flatten", false, "Publish the legacy one-entry-per-occurrence projection")
	RootCmd.AddCommand(generateCmd)
}
