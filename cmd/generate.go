package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docstudio/internal/assistant"
	"docstudio/internal/logger"
	"docstudio/internal/validate"
	"docstudio/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate or update an artifact with the LLM assistant",
	Long: `Ask the assistant to create a document type, template, or theme from a
plain-text description, or to edit an existing artifact. The model output is
extracted from the response, validated against the studio's rules, and only
printed when it passes; on failure the itemized issues are printed instead.

Templates are generated against a document type so field paths line up; pass
it with --type. Updates send the current artifact JSON alongside the request.

Required environment variables:
  OPENAI_API_KEY - OpenAI API key
  OPENAI_MODEL   - Model name (optional, default gpt-4o-mini)`,
	Example: `  # Create a document type
  docstudio generate "quote for a landscaping business" --kind document-type

  # Create a template for an existing document type
  docstudio generate "two-column modern layout" --kind template --type invoice-type.json

  # Update an existing theme
  docstudio generate "switch the accent color to teal" --kind theme --update my-theme.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("kind", "k", "", "Artifact kind: document-type, template, or theme")
	generateCmd.Flags().String("type", "", "Document type JSON file (required for templates)")
	generateCmd.Flags().String("update", "", "Existing artifact JSON file to update instead of creating")
	generateCmd.Flags().Int("timeout", 120, "Request timeout in seconds")
	generateCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	_ = generateCmd.MarkFlagRequired("kind")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	kindArg, _ := cmd.Flags().GetString("kind")
	typePath, _ := cmd.Flags().GetString("type")
	updatePath, _ := cmd.Flags().GetString("update")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")
	outputPath, _ := cmd.Flags().GetString("output")

	kind, err := assistant.ParseKind(kindArg)
	if err != nil {
		return err
	}
	description := args[0]

	svc, err := assistant.NewAssistant()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("kind", string(kind)).
		Bool("update", updatePath != "").
		Msg("Starting artifact generation")

	var success bool
	var out []byte
	switch kind {
	case assistant.KindDocumentType:
		result, err := svc.GenerateDocumentType(ctx, description)
		if err != nil {
			return err
		}
		success, out = emitResult(cmd, "document type", result)
	case assistant.KindTemplate:
		dt, err := loadDocumentType(typePath)
		if err != nil {
			return err
		}
		var result validate.Result[models.Template]
		if updatePath != "" {
			current, loadErr := loadArtifact[models.Template](updatePath)
			if loadErr != nil {
				return loadErr
			}
			result, err = svc.UpdateTemplate(ctx, dt, current, description)
		} else {
			result, err = svc.GenerateTemplate(ctx, dt, description)
		}
		if err != nil {
			return err
		}
		success, out = emitResult(cmd, "template", result)
	case assistant.KindTheme:
		var result validate.Result[models.Theme]
		if updatePath != "" {
			current, loadErr := loadArtifact[models.Theme](updatePath)
			if loadErr != nil {
				return loadErr
			}
			result, err = svc.UpdateTheme(ctx, current, description)
		} else {
			result, err = svc.GenerateTheme(ctx, description)
		}
		if err != nil {
			return err
		}
		success, out = emitResult(cmd, "theme", result)
	}

	if !success {
		return fmt.Errorf("generated %s failed validation", kind)
	}
	return writeOutput(cmd, outputPath, out)
}

// emitResult prints issues on failure and returns the artifact JSON on
// success.
func emitResult[T any](cmd *cobra.Command, what string, result validate.Result[T]) (bool, []byte) {
	if !result.Success {
		printIssues(cmd, "generated "+what, result.Issues)
		return false, nil
	}
	out, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return false, nil
	}
	return true, out
}

func loadDocumentType(path string) (models.DocumentType, error) {
	if path == "" {
		return models.DocumentType{}, fmt.Errorf("--type is required when generating a template")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.DocumentType{}, fmt.Errorf("failed to read document type file: %w", err)
	}
	result := validate.DocumentType(raw)
	if !result.Success {
		return models.DocumentType{}, fmt.Errorf("document type %s failed validation: %v", path, result.Issues)
	}
	return *result.Data, nil
}

func loadArtifact[T any](path string) (T, error) {
	var artifact T
	raw, err := os.ReadFile(path)
	if err != nil {
		return artifact, fmt.Errorf("failed to read artifact file: %w", err)
	}
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return artifact, fmt.Errorf("artifact file is not valid JSON: %w", err)
	}
	return artifact, nil
}
