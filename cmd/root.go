package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docstudio/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "docstudio",
	Short: "Document Studio CLI - render, validate, and generate document artifacts",
	Long: `Document Studio CLI exposes the studio's document pipeline from the
command line: render document data through a Mustache-style template into
sanitized preview HTML, validate document types, templates, and themes
against the studio's conventions, and generate new artifacts with an LLM.

The same validation rules gate user-authored and LLM-generated artifacts,
so anything this tool accepts will also work in the studio.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Document Studio CLI executed")

		fmt.Println("Welcome to Document Studio CLI!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
