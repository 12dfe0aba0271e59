package main

import (
	"os"

	"symposium-session-pipeline/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
