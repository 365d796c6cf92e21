package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docstudio/internal/assistant"
	"docstudio/internal/logger"
	"docstudio/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [artifact-file]",
	Short: "Validate a document type, template, or theme artifact",
	Long: `Check a candidate artifact JSON file against the studio's structural and
convention rules: required shape, kebab-case ids, template markers
(-content id, -preview class, data-field attributes, loop markers), and
required theme CSS (variables, :root, @media print, @page).

The result is printed as JSON in the same shape the studio uses:
success, itemized issues, and the validated artifact data on success.
The exit code is non-zero when validation fails, so the command works as a
pre-save gate in scripts.`,
	Example: `  # Validate a template
  docstudio validate my-template.json --kind template

  # Validate a theme and capture the result
  docstudio validate theme.json --kind theme -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("kind", "k", "", "Artifact kind: document-type, template, or theme")
	validateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	_ = validateCmd.MarkFlagRequired("kind")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	kindArg, _ := cmd.Flags().GetString("kind")
	outputPath, _ := cmd.Flags().GetString("output")

	kind, err := assistant.ParseKind(kindArg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read artifact file: %w", err)
	}

	var success bool
	var out []byte
	switch kind {
	case assistant.KindDocumentType:
		result := validate.DocumentType(raw)
		success, out = result.Success, marshalResult(result)
	case assistant.KindTemplate:
		result := validate.Template(raw)
		success, out = result.Success, marshalResult(result)
	case assistant.KindTheme:
		result := validate.Theme(raw)
		success, out = result.Success, marshalResult(result)
	}

	log.Info().
		Str("file", args[0]).
		Str("kind", string(kind)).
		Bool("success", success).
		Msg("Validated artifact")

	if err := writeOutput(cmd, outputPath, out); err != nil {
		return err
	}
	if !success {
		return fmt.Errorf("%s failed validation", kind)
	}
	return nil
}

func marshalResult(result any) []byte {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return []byte(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}
	return out
}
