package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/models"
	"symposium-session-pipeline/internal/services"
)

var (
	verifySessionsIn string
	verifyScheduleIn string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check sessions.json against schedule.json",
	Long: "Reports data-quality defects: duplicate IDs, TBD placeholders, " +
		"unknown time slots, and disagreements between the two published " +
		"views. Findings are printed for operator review; the command still " +
		"exits zero.",
	Run: func(cmd *cobra.Command, args []string) {
		sessions, err := services.LoadSessions(verifySessionsIn)
		if err != nil {
			exitErr("loading sessions", err)
		}

		var schedule *models.ScheduleOutput
		if verifyScheduleIn != "" {
			if _, statErr := os.Stat(verifyScheduleIn); statErr == nil {
				schedule, err = services.LoadSchedule(verifyScheduleIn)
				if err != nil {
					exitErr("loading schedule", err)
				}
			}
		}

		report := services.VerifyConsistency(sessions, schedule)
		if report.OK() {
			fmt.Println("OK: no consistency issues found")
			return
		}

		fmt.Printf("Found %d issue(s):\n", len(report.Findings))
		for _, finding := range report.Findings {
			fmt.Printf("  - %s\n", finding)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifySessionsIn, "sessions", "sessions.json", "Canonical sessions input file")
	verifyCmd.Flags().StringVar(&verifyScheduleIn, "schedule", "schedule.json", "Schedule view input file")
	RootCmd.AddCommand(verifyCmd)
}
