package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/generation"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/redact"
)

// PrioritizeResult is a suggested ordering of tasks.
type PrioritizeResult struct {
	Tasks     []domain.TaskSummary `json:"prioritized_tasks"`
	Reasoning string               `json:"reasoning"`
}

// Insights is a short productivity summary with up to three tips.
type Insights struct {
	Summary string   `json:"ai_summary"`
	Tips    []string `json:"ai_tips"`
}

// Assistant runs AI operations against a generation backend and falls back
// to deterministic answers when the backend is missing or fails.
//
// An Assistant is immutable after construction and safe for concurrent use.
type Assistant struct {
	generator generation.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock overrides the time source used to date parse prompts.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// New creates an Assistant. A nil generator makes the Assistant permanently
// unavailable, so every operation answers with its fallback.
func New(generator generation.Generator, log *slog.Logger, opts ...Option) *Assistant {
	if log == nil {
		log = slog.Default()
	}

	a := &Assistant{
		generator: generator,
		logger:    log.With(slog.String("component", "assistant")),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsAvailable reports whether a generation backend is configured.
func (a *Assistant) IsAvailable() bool {
	return a.generator != nil
}

// Parse converts natural language into a task draft.
func (a *Assistant) Parse(ctx context.Context, text string) ParsedTaskDraft {
	if !a.IsAvailable() {
		return FallbackParse(text)
	}

	draft, err := a.parse(ctx, text)
	if err != nil {
		a.logFailure(ctx, "parse", err)
		return FallbackParse(text)
	}
	return draft
}

func (a *Assistant) parse(ctx context.Context, text string) (ParsedTaskDraft, error) {
	payload, err := a.requestJSON(ctx, parsePrompt, newParseData(text, a.now()))
	if err != nil {
		return ParsedTaskDraft{}, err
	}
	return ValidateParsedTask(payload)
}

// Prioritize asks the backend for an ordering of tasks.
//
// Tasks are emitted in the order the backend returns their ids, once per
// occurrence. Unknown ids are skipped, and tasks whose ids the backend left
// out are not part of the result.
func (a *Assistant) Prioritize(ctx context.Context, tasks []domain.TaskSummary) PrioritizeResult {
	if !a.IsAvailable() || len(tasks) == 0 {
		return FallbackPrioritize(tasks, ReasoningUnavailable)
	}

	result, err := a.prioritize(ctx, tasks)
	if err != nil {
		a.logFailure(ctx, "prioritize", err)
		return FallbackPrioritize(tasks, "Error: "+redact.Error(err))
	}
	return result
}

func (a *Assistant) prioritize(ctx context.Context, tasks []domain.TaskSummary) (PrioritizeResult, error) {
	payload, err := a.requestJSON(ctx, prioritizePrompt, newPrioritizeData(tasks))
	if err != nil {
		return PrioritizeResult{}, err
	}

	byID := make(map[int64]domain.TaskSummary, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var ordered []domain.TaskSummary
	if !payload.Has("order") {
		ordered = append(ordered, tasks...)
	} else {
		order, ok := payload.List("order")
		if !ok {
			return PrioritizeResult{}, fmt.Errorf("%w: order is not a list", generation.ErrInvalidResponse)
		}

		ordered = make([]domain.TaskSummary, 0, len(order))
		for _, raw := range order {
			id, ok := taskID(raw)
			if !ok {
				continue
			}
			if t, found := byID[id]; found {
				ordered = append(ordered, t)
			}
		}
	}

	reasoning, ok := payload.String("reasoning")
	if !ok {
		reasoning = ReasoningDefault
	}

	return PrioritizeResult{Tasks: ordered, Reasoning: reasoning}, nil
}

// taskID reads an id from a decoded JSON number. Only integral values count.
func taskID(raw any) (int64, bool) {
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// Categorize asks the backend for the category of a task.
func (a *Assistant) Categorize(ctx context.Context, title, description string) domain.Category {
	if !a.IsAvailable() {
		return FallbackCategorize()
	}

	reply, err := a.request(ctx, categorizePrompt, newCategorizeData(title, description))
	if err != nil {
		a.logFailure(ctx, "categorize", err)
		return FallbackCategorize()
	}
	return ValidateCategory(reply)
}

// GenerateInsights asks the backend for a productivity summary of the given
// stats and recent tasks.
func (a *Assistant) GenerateInsights(ctx context.Context, tasks []domain.TaskSummary, stats domain.TaskStats) Insights {
	if !a.IsAvailable() {
		return FallbackInsights(stats)
	}

	insights, err := a.generateInsights(ctx, tasks, stats)
	if err != nil {
		a.logFailure(ctx, "insights", err)
		return FallbackInsights(stats)
	}
	return insights
}

func (a *Assistant) generateInsights(ctx context.Context, tasks []domain.TaskSummary, stats domain.TaskStats) (Insights, error) {
	payload, err := a.requestJSON(ctx, insightsPrompt, newInsightsData(tasks, stats))
	if err != nil {
		return Insights{}, err
	}

	summary, ok := payload.String("summary")
	if !ok {
		summary = SummaryDefault
	}

	tips := append([]string(nil), DefaultTips...)
	if list, ok := payload.List("tips"); ok {
		tips = make([]string, 0, maxTips)
		for _, raw := range list {
			if tip, ok := raw.(string); ok && len(tips) < maxTips {
				tips = append(tips, tip)
			}
		}
	}

	return Insights{Summary: summary, Tips: tips}, nil
}

// request renders a prompt and returns the backend's raw reply.
func (a *Assistant) request(ctx context.Context, name string, data any) (string, error) {
	prompt, err := renderPrompt(name, data)
	if err != nil {
		return "", err
	}

	log := logger.FromContextOrDefault(ctx, a.logger)
	log.DebugContext(ctx, "sending prompt to generator",
		slog.String("prompt", name),
		slog.Int("prompt_length", len(prompt)))

	reply, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// requestJSON is request followed by ExtractJSON.
func (a *Assistant) requestJSON(ctx context.Context, name string, data any) (Payload, error) {
	reply, err := a.request(ctx, name, data)
	if err != nil {
		return nil, err
	}
	return ExtractJSON(reply), nil
}

func (a *Assistant) logFailure(ctx context.Context, operation string, err error) {
	logger.FromContextOrDefault(ctx, a.logger).ErrorContext(ctx, "AI operation failed, using fallback",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)))
}
