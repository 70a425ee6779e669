package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/config"
	"github.com/Harsha0o/ai-productivity-assistant/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records requests and returns a canned response.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error
	wait bool

	calls    int
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline time.Time
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	f.config = cfg
	f.deadline, _ = ctx.Deadline()
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: genai.FinishReasonStop}},
	}
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:          "test-key",
		ModelName:             "gemini-1.5-flash",
		Temperature:           0.2,
		RequestTimeoutSeconds: 5,
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.GeminiAPIKey = "  "

	g, err := NewGenerator(context.Background(), nil, cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Nil(t, g)
}

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		models contentGenerator
		mutate func(cfg *config.LLMConfig)
	}{
		{name: "nil client", models: nil, mutate: func(cfg *config.LLMConfig) {}},
		{name: "empty model", models: &fakeModels{}, mutate: func(cfg *config.LLMConfig) { cfg.ModelName = "" }},
		{name: "negative temperature", models: &fakeModels{}, mutate: func(cfg *config.LLMConfig) { cfg.Temperature = -0.1 }},
		{name: "temperature too high", models: &fakeModels{}, mutate: func(cfg *config.LLMConfig) { cfg.Temperature = 2.1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)

			g, err := newGenerator(tc.models, nil, cfg)
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
			assert.Nil(t, g)
		})
	}
}

func TestGenerateReturnsText(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse(`{"title":`, `"Buy milk"}`)}
	g, err := newGenerator(models, nil, testConfig())
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "parse this")
	require.NoError(t, err)

	assert.Equal(t, `{"title":"Buy milk"}`, text)
	assert.Equal(t, "gemini-1.5-flash", models.model)
	assert.Equal(t, "gemini-1.5-flash", g.Model())
	require.Len(t, models.contents, 1)
	require.Len(t, models.contents[0].Parts, 1)
	assert.Equal(t, "parse this", models.contents[0].Parts[0].Text)
	require.NotNil(t, models.config.Temperature)
	assert.InDelta(t, 0.2, *models.config.Temperature, 1e-6)
	assert.False(t, models.deadline.IsZero(), "calls carry a deadline")
}

func TestGenerateSkipsThoughtParts(t *testing.T) {
	t.Parallel()

	resp := textResponse("answer")
	resp.Candidates[0].Content.Parts = append(
		[]*genai.Part{{Text: "thinking...", Thought: true}},
		resp.Candidates[0].Content.Parts...,
	)

	g, err := newGenerator(&fakeModels{resp: resp}, nil, testConfig())
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestGenerateReturnsBlankText(t *testing.T) {
	t.Parallel()

	g, err := newGenerator(&fakeModels{resp: textResponse("  ", "\n")}, nil, testConfig())
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "  \n", text)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("503 service unavailable")

	tests := []struct {
		name    string
		models  *fakeModels
		wantErr error
	}{
		{
			name:    "transport error",
			models:  &fakeModels{err: backendErr},
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name:    "nil response",
			models:  &fakeModels{},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no candidates",
			models:  &fakeModels{resp: &genai.GenerateContentResponse{}},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "safety block",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "prompt blocked",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "nil content",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			}},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no text parts",
			models:  &fakeModels{resp: textResponse()},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "only thought parts",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content:      &genai.Content{Parts: []*genai.Part{{Text: "thinking...", Thought: true}}},
					FinishReason: genai.FinishReasonStop,
				}},
			}},
			wantErr: generation.ErrInvalidResponse,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := newGenerator(tc.models, nil, testConfig())
			require.NoError(t, err)

			text, err := g.Generate(context.Background(), "prompt")
			assert.Empty(t, text)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, tc.models.calls, "no retries")
		})
	}

	g, err := newGenerator(&fakeModels{err: backendErr}, nil, testConfig())
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, backendErr, "the backend error stays in the chain")
}

func TestGenerateTimeout(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RequestTimeoutSeconds = 1

	models := &fakeModels{wait: true}
	g, err := newGenerator(models, nil, cfg)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "slow prompt")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("x")}
	g, err := newGenerator(models, nil, testConfig())
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Zero(t, models.calls)
}
