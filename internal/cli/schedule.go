package cli

import (
	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/services"
)

var (
	scheduleSessionsIn string
	scheduleOut        string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Derive the grid-indexed schedule.json from sessions.json",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("loading config", err)
		}

		sessions, err := services.LoadSessions(scheduleSessionsIn)
		if err != nil {
			exitErr("loading sessions", err)
		}

		publisher := services.NewPublisherService(cfg)
		if err := publisher.WriteSchedule(sessions, scheduleOut); err != nil {
			exitErr("writing schedule", err)
		}
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleSessionsIn, "sessions", "sessions.json", "Canonical sessions input file")
	scheduleCmd.Flags().StringVarP(&scheduleOut, "out", "o", "schedule.json", "Schedule view output file")
	RootCmd.AddCommand(scheduleCmd)
}
