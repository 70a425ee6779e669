package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/config"
	"github.com/Harsha0o/ai-productivity-assistant/internal/generation"
	"google.golang.org/genai"
)

// DefaultRequestTimeout applies when the configuration carries no timeout.
const DefaultRequestTimeout = 30 * time.Second

// contentGenerator is the subset of *genai.Models used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator using the Gemini API.
// It is safe for concurrent use.
type Generator struct {
	models  contentGenerator
	model   string
	config  *genai.GenerateContentConfig
	timeout time.Duration
	logger  *slog.Logger
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
// An empty API key is reported as generation.ErrInvalidConfig.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(client.Models, logger, cfg)
}

func newGenerator(models contentGenerator, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if models == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return nil, fmt.Errorf("%w: temperature %.2f out of range [0, 2]", generation.ErrInvalidConfig, cfg.Temperature)
	}
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	temperature := float32(cfg.Temperature)

	return &Generator{
		models:  models,
		model:   cfg.ModelName,
		config:  &genai.GenerateContentConfig{Temperature: &temperature},
		timeout: timeout,
		logger: logger.With(
			slog.String("component", "gemini_generator"),
			slog.String("model", cfg.ModelName),
		),
	}, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt to Gemini and returns the text of the first candidate.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	g.logger.DebugContext(ctx, "calling Gemini API", slog.Int("prompt_length", len(prompt)))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call succeeded",
		slog.Int("response_length", len(text)),
		slog.Duration("duration", time.Since(start)))
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	hasText := false
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		hasText = true
		sb.WriteString(part.Text)
	}

	// A blank reply is still a reply: callers read it as JSON with no fields
	// and fill in defaults. Only a candidate without any text part fails.
	if !hasText {
		return "", fmt.Errorf("%w: response contained no text parts", generation.ErrInvalidResponse)
	}
	return sb.String(), nil
}
