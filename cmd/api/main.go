package main

import (
	"os"

	"github.com/dhima/looking-glass/internal/api/handlers"
	"github.com/spf13/cobra"
)

// @title Looking Glass API
// @version 1.0.2
// @description A minimalist daily log tracker. Create, read, update, and delete what you did each day.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "looking-glass",
		Short:         "Daily log tracker API",
		Long:          `Looking Glass serves a small REST API for recording what you did each day.`,
		Version:       handlers.APIVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	serve := newServeCmd(&envFile)
	rootCmd.AddCommand(serve, newInitDBCmd(&envFile))
	// Running the bare binary starts the API, as it always has.
	rootCmd.RunE = serve.RunE
	return rootCmd
}
