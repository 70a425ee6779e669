package api

import (
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/assistant"
	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
)

// dueDateLayout is the format of due dates in responses.
const dueDateLayout = "2006-01-02T15:04:05"

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string          `json:"title"       validate:"required,max=255"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Category    domain.Category `json:"category"    validate:"omitempty,oneof=work personal health finance learning errands other"`
	// DueDate is an ISO-8601 date or date-time.
	DueDate *string `json:"due_date"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Omitted or null fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string          `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Completed   *bool            `json:"completed"`
	Priority    *domain.Priority `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Category    *domain.Category `json:"category"    validate:"omitempty,oneof=work personal health finance learning errands other"`
	DueDate     *string          `json:"due_date"`
}

// TaskResponse is the representation of a stored task.
type TaskResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Completed   bool            `json:"completed"`
	Priority    domain.Priority `json:"priority"`
	Category    domain.Category `json:"category"`
	DueDate     *string         `json:"due_date"`
	AIGenerated bool            `json:"ai_generated"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TaskListResponse is one page of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseRequest defines the payload for natural-language parsing.
type ParseRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// ParsedTaskResponse is a task created from natural language.
type ParsedTaskResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Category    domain.Category `json:"category"`
	DueDate     *string         `json:"due_date"`
	AIGenerated bool            `json:"ai_generated"`
	Confidence  float64         `json:"confidence"`
}

// ParseAndCreateResponse is returned by the parse-and-create endpoint.
type ParseAndCreateResponse struct {
	Message string             `json:"message"`
	Task    ParsedTaskResponse `json:"task"`
}

// PrioritizeRequest lists the tasks to order.
type PrioritizeRequest struct {
	TaskIDs []int64 `json:"task_ids" validate:"required,min=1,dive,gt=0"`
}

// PrioritizeResponse is the suggested ordering.
type PrioritizeResponse = assistant.PrioritizeResult

// CategorizeResponse reports the category stored for a task.
type CategorizeResponse struct {
	Message  string          `json:"message"`
	TaskID   int64           `json:"task_id"`
	Category domain.Category `json:"category"`
}

// AIStatusResponse reports backend availability.
type AIStatusResponse struct {
	Available bool    `json:"available"`
	Model     *string `json:"model"`
}

// InsightsResponse combines task stats with productivity insights.
type InsightsResponse struct {
	TotalTasks      int                     `json:"total_tasks"`
	CompletedTasks  int                     `json:"completed_tasks"`
	CompletionRate  float64                 `json:"completion_rate"`
	TasksByCategory map[domain.Category]int `json:"tasks_by_category"`
	TasksByPriority map[domain.Priority]int `json:"tasks_by_priority"`
	AISummary       string                  `json:"ai_summary"`
	AITips          []string                `json:"ai_tips"`
}

func formatDueDate(due *time.Time) *string {
	if due == nil {
		return nil
	}
	s := due.UTC().Format(dueDateLayout)
	return &s
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		Category:    task.Category,
		DueDate:     formatDueDate(task.DueDate),
		AIGenerated: task.AIGenerated,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
