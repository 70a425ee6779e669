package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/assistant"
	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

// insightsRecentTasks is how many recent tasks are loaded for insights.
const insightsRecentTasks = 10

// Assistant defines the AI operations the service layer depends on.
// *assistant.Assistant satisfies it.
type Assistant interface {
	IsAvailable() bool
	Parse(ctx context.Context, text string) assistant.ParsedTaskDraft
	Prioritize(ctx context.Context, tasks []domain.TaskSummary) assistant.PrioritizeResult
	Categorize(ctx context.Context, title, description string) domain.Category
	GenerateInsights(ctx context.Context, tasks []domain.TaskSummary, stats domain.TaskStats) assistant.Insights
}

// AIStatus reports whether the AI backend is usable and which model serves it.
type AIStatus struct {
	Available bool
	Model     *string
}

// CreatedDraft is a task created from natural language together with the
// confidence of the parse.
type CreatedDraft struct {
	Task       *domain.Task
	Confidence float64
}

// InsightsReport combines the task stats with the assistant's insights.
type InsightsReport struct {
	Stats    domain.TaskStats
	Insights assistant.Insights
}

// AIService provides the AI-assisted task operations
type AIService interface {
	// Status reports backend availability
	Status() AIStatus

	// Parse converts natural language into a task draft without saving it
	Parse(ctx context.Context, text string) assistant.ParsedTaskDraft

	// ParseAndCreate parses natural language and stores the resulting task
	ParseAndCreate(ctx context.Context, text string) (*CreatedDraft, error)

	// Prioritize orders the incomplete tasks among ids
	Prioritize(ctx context.Context, ids []int64) (assistant.PrioritizeResult, error)

	// CategorizeTask picks and stores a category for a task
	CategorizeTask(ctx context.Context, id int64) (domain.Category, error)

	// Insights summarizes productivity across all tasks
	Insights(ctx context.Context) (*InsightsReport, error)
}

// aiServiceImpl implements the AIService interface
type aiServiceImpl struct {
	assistant Assistant
	model     string
	tasks     store.TaskStore
	stats     store.StatsStore
	tx        store.Transactor
	logger    *slog.Logger
}

// NewAIService creates a new AIService. model names the backend model
// reported by Status when the assistant is available.
// It returns an error if any of the required dependencies are nil.
func NewAIService(
	a Assistant,
	model string,
	tasks store.TaskStore,
	stats store.StatsStore,
	tx store.Transactor,
	logger *slog.Logger,
) (AIService, error) {
	switch {
	case a == nil:
		return nil, &TaskServiceError{Operation: "create_service", Message: "assistant cannot be nil"}
	case tasks == nil:
		return nil, &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"}
	case stats == nil:
		return nil, &TaskServiceError{Operation: "create_service", Message: "stats store cannot be nil"}
	case tx == nil:
		return nil, &TaskServiceError{Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &aiServiceImpl{
		assistant: a,
		model:     model,
		tasks:     tasks,
		stats:     stats,
		tx:        tx,
		logger:    logger.With(slog.String("component", "ai_service")),
	}, nil
}

// Status implements AIService.
func (s *aiServiceImpl) Status() AIStatus {
	if !s.assistant.IsAvailable() {
		return AIStatus{}
	}
	model := s.model
	return AIStatus{Available: true, Model: &model}
}

// Parse implements AIService.
func (s *aiServiceImpl) Parse(ctx context.Context, text string) assistant.ParsedTaskDraft {
	return s.assistant.Parse(ctx, text)
}

// ParseAndCreate implements AIService.
// A due date the backend wrote in an unreadable form is dropped.
func (s *aiServiceImpl) ParseAndCreate(ctx context.Context, text string) (*CreatedDraft, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	draft := s.assistant.Parse(ctx, text)

	var due *time.Time
	if draft.DueDate != nil {
		parsed, err := domain.ParseDueDate(*draft.DueDate)
		if err != nil {
			log.DebugContext(ctx, "dropping unparseable due date",
				slog.String("due_date", *draft.DueDate))
		} else {
			due = parsed
		}
	}

	title := draft.Title
	if strings.TrimSpace(title) == "" {
		title = assistant.DefaultTitle
	}

	task, err := domain.NewTask(title, draft.Description, draft.Priority, draft.Category, due)
	if err != nil {
		return nil, NewTaskServiceError("parse_and_create", "parsed task is invalid", err)
	}
	task.AIGenerated = true

	if err := s.tasks.Create(ctx, task); err != nil {
		log.ErrorContext(ctx, "failed to create parsed task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("parse_and_create", "failed to save task", err)
	}

	log.InfoContext(ctx, "task created from natural language",
		slog.Int64("task_id", task.ID),
		slog.Float64("confidence", draft.Confidence))

	return &CreatedDraft{Task: task, Confidence: draft.Confidence}, nil
}

// Prioritize implements AIService.
func (s *aiServiceImpl) Prioritize(ctx context.Context, ids []int64) (assistant.PrioritizeResult, error) {
	tasks, err := s.tasks.FindIncompleteByIDs(ctx, ids)
	if err != nil {
		return assistant.PrioritizeResult{}, NewTaskServiceError("prioritize", "failed to load tasks", err)
	}
	if len(tasks) == 0 {
		return assistant.PrioritizeResult{}, ErrNoTasksFound
	}

	return s.assistant.Prioritize(ctx, summarize(tasks)), nil
}

// CategorizeTask implements AIService.
// The backend is consulted outside the transaction; only the write is locked.
func (s *aiServiceImpl) CategorizeTask(ctx context.Context, id int64) (domain.Category, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return "", NewTaskServiceError("categorize_task", "failed to retrieve task", err)
	}

	description := ""
	if task.Description != nil {
		description = *task.Description
	}
	category := s.assistant.Categorize(ctx, task.Title, description)

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		current, err := txTasks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		current.Category = category
		current.UpdatedAt = time.Now().UTC()
		return txTasks.Update(ctx, current)
	})
	if err != nil {
		return "", NewTaskServiceError("categorize_task", "failed to save category", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "task categorized",
		slog.Int64("task_id", id),
		slog.String("category", string(category)))

	return category, nil
}

// Insights implements AIService.
func (s *aiServiceImpl) Insights(ctx context.Context) (*InsightsReport, error) {
	stats, err := s.stats.GetTaskStats(ctx)
	if err != nil {
		return nil, NewTaskServiceError("insights", "failed to compute task stats", err)
	}

	recent, err := s.tasks.ListRecent(ctx, insightsRecentTasks)
	if err != nil {
		return nil, NewTaskServiceError("insights", "failed to load recent tasks", err)
	}

	return &InsightsReport{
		Stats:    stats,
		Insights: s.assistant.GenerateInsights(ctx, summarize(recent), stats),
	}, nil
}

func summarize(tasks []*domain.Task) []domain.TaskSummary {
	out := make([]domain.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Summary())
	}
	return out
}
