// Package cli implements the session-pipeline CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symposium-session-pipeline/internal/config"
)

var (
	configPath  string
	strandsFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "session-pipeline",
	Short: "Symposium session data pipeline",
	Long: "Converts the symposium roster and schedule grid into the JSON views " +
		"and static page fragments the conference site consumes.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (defaults are built in)")
	RootCmd.PersistentFlags().StringVar(&strandsFlag, "strands", "", "Comma-separated strand numbers to keep (e.g. 1,2); empty keeps all")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if strandsFlag != "" {
		cfg.StrandFilter = nil
		for _, s := range strings.Split(strandsFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.StrandFilter = append(cfg.StrandFilter, s)
			}
		}
	}
	return cfg, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
