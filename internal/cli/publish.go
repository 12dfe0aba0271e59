package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/services"
)

var (
	publishBucket     string
	publishSessionsIn string
	publishScheduleIn string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the generated JSON artifacts to the site's S3 bucket",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		uploader, err := services.NewS3Publisher(ctx, publishBucket)
		if err != nil {
			exitErr("creating S3 publisher", err)
		}

		artifacts := []struct{ path, prefix string }{
			{publishSessionsIn, "sessions"},
		}
		if publishScheduleIn != "" {
			artifacts = append(artifacts, struct{ path, prefix string }{publishScheduleIn, "schedule"})
		}

		for _, a := range artifacts {
			results, err := uploader.UploadFile(ctx, a.path, a.prefix)
			if err != nil {
				exitErr("uploading "+a.path, err)
			}
			for _, r := range results {
				fmt.Printf("uploaded %s (%d bytes) -> %s\n", r.Key, r.Size, r.PublicURL)
			}
		}
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishBucket, "bucket", "", "S3 bucket name (default: $SESSIONS_S3_BUCKET)")
	publishCmd.Flags().StringVar(&publishSessionsIn, "sessions", "sessions.json", "Canonical sessions file to upload")
	publishCmd.Flags().StringVar(&publishScheduleIn, "schedule", "schedule.json", "Schedule view file to upload")
	RootCmd.AddCommand(publishCmd)
}
