package cli

import (
	"log"

	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/services"
)

var (
	patchSessionsIn string
	patchPage       string
	patchSelector   string
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Rebuild the session-card container of a static page",
	Long: "Clears the selected container element and rebuilds it with one " +
		"card per session. The patch is destructive and idempotent: the same " +
		"session collection always produces the same page.",
	Run: func(cmd *cobra.Command, args []string) {
		sessions, err := services.LoadSessions(patchSessionsIn)
		if err != nil {
			exitErr("loading sessions", err)
		}

		patcher := services.NewHTMLPatchService()
		if err := patcher.PatchFile(patchPage, patchSelector, sessions); err != nil {
			exitErr("patching page", err)
		}
		log.Printf("[PATCH] Updated %s (%s)", patchPage, patchSelector)
	},
}

func init() {
	patchCmd.Flags().StringVar(&patchSessionsIn, "sessions", "sessions.json", "Canonical sessions input file")
	patchCmd.Flags().StringVar(&patchPage, "page", "index.html", "Static page to patch")
	patchCmd.Flags().StringVar(&patchSelector, "selector", "#sessions-container", "CSS selector of the card container")
	RootCmd.AddCommand(patchCmd)
}
