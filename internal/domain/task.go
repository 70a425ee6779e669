package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters in a task title.
const MaxTitleLength = 255

// Priority represents how urgent a task is.
type Priority string

// Possible priority values
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority in ascending urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Category groups tasks by life area.
type Category string

// Possible category values
const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryLearning Category = "learning"
	CategoryErrands  Category = "errands"
	CategoryOther    Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryFinance,
	CategoryLearning,
	CategoryErrands,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryFinance,
		CategoryLearning, CategoryErrands, CategoryOther:
		return true
	}
	return false
}

// Task is a single to-do item. Tasks created from a natural-language draft
// are flagged with AIGenerated.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	DueDate     *time.Time `json:"due_date"`
	AIGenerated bool       `json:"ai_generated"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new, not yet persisted Task. An empty priority defaults to
// medium and an empty category defaults to other.
// Returns an error if validation fails.
func NewTask(
	title string,
	description *string,
	priority Priority,
	category Category,
	dueDate *time.Time,
) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	if category == "" {
		category = CategoryOther
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", nil)
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 255 characters", nil)
	}

	if !t.Priority.IsValid() {
		return NewValidationError("priority", "is not a valid priority", ErrInvalidPriority)
	}

	if !t.Category.IsValid() {
		return NewValidationError("category", "is not a valid category", ErrInvalidCategory)
	}

	return nil
}

// Summary returns the read-only projection of the task used by the AI
// assistant.
func (t *Task) Summary() TaskSummary {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.Format("2006-01-02T15:04:05")
		due = &s
	}
	return TaskSummary{
		ID:       t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Category: t.Category,
		DueDate:  due,
	}
}

// TaskSummary is a read-only projection of a persisted task.
type TaskSummary struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
	DueDate  *string  `json:"due_date"`
}

// dueDateLayouts are tried in order by ParseDueDate.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueDate parses an ISO-8601 date or date-time. Values without a zone
// are interpreted as UTC.
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrInvalidDueDate
	}

	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			utc := parsed.UTC()
			return &utc, nil
		}
	}

	return nil, NewValidationError("due_date", "must be an ISO-8601 date or date-time", ErrInvalidDueDate)
}
