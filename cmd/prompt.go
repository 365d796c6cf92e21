package cmd

import (
	"github.com/spf13/cobra"

	"docstudio/internal/assistant"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the assembled system prompt for an artifact kind",
	Long: `Print the system prompt the assistant sends for a given artifact kind:
the shared preamble, the kind-specific authoring guide, a worked example,
and the closing hard requirements that mirror the validator rules.

Useful for inspecting what steers the model, or for driving another LLM
caller with the same instructions.`,
	Example: `  docstudio prompt --kind theme
  docstudio prompt --kind template > template-prompt.md`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().StringP("kind", "k", "", "Artifact kind: document-type, template, or theme")
	promptCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	_ = promptCmd.MarkFlagRequired("kind")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	kindArg, _ := cmd.Flags().GetString("kind")
	outputPath, _ := cmd.Flags().GetString("output")

	kind, err := assistant.ParseKind(kindArg)
	if err != nil {
		return err
	}
	return writeOutput(cmd, outputPath, []byte(assistant.SystemPrompt(kind)))
}
