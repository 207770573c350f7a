package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashcardi-api/config"
)

func init() {
	// Railway injects the environment directly, everywhere else reads .env
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flashcardi",
	Short: "Flashcard deck and card API",
	Long: `flashcardi serves the REST API behind the flashcard study app.

Running it without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
