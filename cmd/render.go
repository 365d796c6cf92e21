package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docstudio/internal/logger"
	"docstudio/internal/render"
	"docstudio/internal/validate"
	"docstudio/pkg/models"
)

var renderCmd = &cobra.Command{
	Use:   "render [data-file]",
	Short: "Render document data through a template into sanitized HTML",
	Long: `Render a document: enrich the data with computed totals and formatted
strings, substitute it into a Mustache-style template, and sanitize the
result against the preview allow-list.

The data file is a JSON object of field values. The template flag points at
either a raw template markup file or a template artifact JSON file with a
"content" field. With --type, the data is first checked against the given
document type and rendering is refused when required fields are missing.`,
	Example: `  # Render to stdout
  docstudio render invoice-data.json --template classic.html

  # Render with a document-type precheck, French formatting, to a file
  docstudio render data.json --template tpl.json --type invoice-type.json \
    --locale fr --currency EUR -o preview.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("template", "t", "", "Template file (markup or artifact JSON)")
	renderCmd.Flags().String("type", "", "Document type JSON file to check the data against")
	renderCmd.Flags().String("locale", "en", "Display locale for dates and numbers")
	renderCmd.Flags().String("currency", "", "ISO 4217 currency code (default: invoice.currency from the data)")
	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	_ = renderCmd.MarkFlagRequired("template")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("render")

	templatePath, _ := cmd.Flags().GetString("template")
	typePath, _ := cmd.Flags().GetString("type")
	locale, _ := cmd.Flags().GetString("locale")
	currency, _ := cmd.Flags().GetString("currency")
	outputPath, _ := cmd.Flags().GetString("output")

	dataBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}
	var data models.Data
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return fmt.Errorf("data file is not a JSON object: %w", err)
	}

	templateSrc, err := readTemplateSource(templatePath)
	if err != nil {
		return err
	}

	if typePath != "" {
		typeBytes, err := os.ReadFile(typePath)
		if err != nil {
			return fmt.Errorf("failed to read document type file: %w", err)
		}
		typeResult := validate.DocumentType(typeBytes)
		if !typeResult.Success {
			printIssues(cmd, "document type", typeResult.Issues)
			return fmt.Errorf("document type failed validation")
		}
		docResult := validate.Document(data, *typeResult.Data)
		if !docResult.Success {
			printIssues(cmd, "document data", docResult.Issues)
			return fmt.Errorf("document data failed validation")
		}
	}

	renderer := render.NewRenderer(render.EnrichOptions{Locale: locale, Currency: currency})
	html, err := renderer.Render(templateSrc, data)
	if err != nil {
		log.Error().Err(err).Msg("Rendering failed")
		return err
	}

	log.Info().
		Str("data", args[0]).
		Str("template", templatePath).
		Int("output_bytes", len(html)).
		Msg("Rendered document")

	return writeOutput(cmd, outputPath, []byte(html))
}

// readTemplateSource accepts either raw template markup or a template
// artifact JSON file and returns the markup.
func readTemplateSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file: %w", err)
	}
	var artifact models.Template
	if err := json.Unmarshal(raw, &artifact); err == nil && artifact.Content != "" {
		return artifact.Content, nil
	}
	return string(raw), nil
}

func printIssues(cmd *cobra.Command, what string, issues []string) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s has %d issue(s):\n", what, len(issues))
	for _, issue := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", issue)
	}
}

func writeOutput(cmd *cobra.Command, path string, out []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
