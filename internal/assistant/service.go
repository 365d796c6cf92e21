// Package assistant exposes the studio's prompt/validation logic to an LLM:
// it assembles the system prompts that steer the model toward artifacts the
// validator accepts, extracts JSON from model responses, and gates every
// result through the validate package before handing it back.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"docstudio/internal/logger"
	"docstudio/internal/validate"
	"docstudio/pkg/models"
)

// Assistant generates and edits studio artifacts through an LLM. Every
// method validates the model output; a Result with Success=false carries the
// itemized issues and no data, while the error return covers transport and
// parse failures.
type Assistant interface {
	GenerateDocumentType(ctx context.Context, description string) (validate.Result[models.DocumentType], error)
	GenerateTemplate(ctx context.Context, dt models.DocumentType, description string) (validate.Result[models.Template], error)
	GenerateTheme(ctx context.Context, description string) (validate.Result[models.Theme], error)
	UpdateTemplate(ctx context.Context, dt models.DocumentType, current models.Template, request string) (validate.Result[models.Template], error)
	UpdateTheme(ctx context.Context, current models.Theme, request string) (validate.Result[models.Theme], error)
}

// Config configures the assistant service.
type Config struct {
	Model       string  // e.g. gpt-4o-mini
	Temperature float32 // low values keep artifact JSON stable
	MaxRetries  int     // attempts per generation before giving up
	MaxTokens   int
}

// DefaultAssistantConfig returns sensible defaults.
func DefaultAssistantConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		MaxRetries:  3,
		MaxTokens:   4000,
	}
}

// DefaultAssistant implements Assistant against the OpenAI chat API.
type DefaultAssistant struct {
	client *openai.Client
	config Config
	log    zerolog.Logger
}

// NewAssistant creates an assistant with configuration from the environment.
func NewAssistant() (*DefaultAssistant, error) {
	const op = "NewAssistant"

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w (set OPENAI_API_KEY)", op, ErrMissingAPIKey)
	}

	cfg := DefaultAssistantConfig()
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Model = model
	}
	if temp := os.Getenv("OPENAI_TEMPERATURE"); temp != "" {
		if f, err := strconv.ParseFloat(temp, 32); err == nil {
			cfg.Temperature = float32(f)
		}
	}
	if retries := os.Getenv("ASSISTANT_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil && n > 0 {
			cfg.MaxRetries = n
		}
	}

	return NewAssistantWithDeps(openai.NewClient(apiKey), cfg), nil
}

// NewAssistantWithDeps creates an assistant with explicit dependencies.
func NewAssistantWithDeps(client *openai.Client, config Config) *DefaultAssistant {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &DefaultAssistant{
		client: client,
		config: config,
		log:    logger.WithComponent("assistant"),
	}
}

// GenerateDocumentType creates a document type from a plain-text description.
func (s *DefaultAssistant) GenerateDocumentType(ctx context.Context, description string) (validate.Result[models.DocumentType], error) {
	return generate(ctx, s, "GenerateDocumentType",
		SystemPrompt(KindDocumentType),
		CreatePrompt(KindDocumentType, description),
		validate.DocumentType)
}

// GenerateTemplate creates a template bound to the given document type.
func (s *DefaultAssistant) GenerateTemplate(ctx context.Context, dt models.DocumentType, description string) (validate.Result[models.Template], error) {
	return generate(ctx, s, "GenerateTemplate",
		SystemPrompt(KindTemplate),
		TemplatePrompt(dt, "", description),
		validate.Template)
}

// GenerateTheme creates a theme from a plain-text description.
func (s *DefaultAssistant) GenerateTheme(ctx context.Context, description string) (validate.Result[models.Theme], error) {
	return generate(ctx, s, "GenerateTheme",
		SystemPrompt(KindTheme),
		CreatePrompt(KindTheme, description),
		validate.Theme)
}

// UpdateTemplate applies a requested change to an existing template.
func (s *DefaultAssistant) UpdateTemplate(ctx context.Context, dt models.DocumentType, current models.Template, request string) (validate.Result[models.Template], error) {
	currentJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return validate.Result[models.Template]{}, &AssistantError{Op: "UpdateTemplate", Err: err, Details: "marshal current template"}
	}
	return generate(ctx, s, "UpdateTemplate",
		SystemPrompt(KindTemplate),
		TemplatePrompt(dt, string(currentJSON), request),
		validate.Template)
}

// UpdateTheme applies a requested change to an existing theme.
func (s *DefaultAssistant) UpdateTheme(ctx context.Context, current models.Theme, request string) (validate.Result[models.Theme], error) {
	currentJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return validate.Result[models.Theme]{}, &AssistantError{Op: "UpdateTheme", Err: err, Details: "marshal current theme"}
	}
	return generate(ctx, s, "UpdateTheme",
		SystemPrompt(KindTheme),
		UpdatePrompt(KindTheme, string(currentJSON), request),
		validate.Theme)
}

func generate[T any](ctx context.Context, s *DefaultAssistant, op, system, user string, gate func([]byte) validate.Result[T]) (validate.Result[T], error) {
	raw, err := s.complete(ctx, op, system, user)
	if err != nil {
		return validate.Result[T]{}, err
	}

	result := gate(raw)
	if !result.Success {
		s.log.Warn().
			Str("op", op).
			Strs("issues", result.Issues).
			Msg("Generated artifact failed validation")
	}
	return result, nil
}

// complete runs the chat completion with retries and returns the extracted
// JSON payload from the model's response.
func (s *DefaultAssistant) complete(ctx context.Context, op, system, user string) (json.RawMessage, error) {
	s.log.Debug().
		Str("op", op).
		Str("model", s.config.Model).
		Int("system_prompt_length", len(system)).
		Int("user_prompt_length", len(user)).
		Msg("Sending generation request")

	var lastErr error
	for attempt := 1; attempt <= s.config.MaxRetries; attempt++ {
		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Temperature: s.config.Temperature,
			MaxTokens:   s.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
		})
		if err != nil {
			lastErr = err
			s.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_retries", s.config.MaxRetries).
				Msg("Model request failed, retrying")
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = ErrEmptyResponse
			continue
		}

		content := resp.Choices[0].Message.Content
		raw, err := ExtractJSON(content)
		if err != nil {
			lastErr = err
			s.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("Model response was not valid JSON, retrying")
			continue
		}

		s.log.Info().
			Str("op", op).
			Int("attempt", attempt).
			Int("payload_bytes", len(raw)).
			Msg("Extracted artifact JSON from model response")
		return raw, nil
	}

	return nil, &AssistantError{
		Op:      op,
		Err:     lastErr,
		Details: fmt.Sprintf("all %d attempts failed", s.config.MaxRetries),
	}
}
