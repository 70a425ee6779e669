package assistant

import (
	"fmt"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
)

// Fallback texts returned when the backend is unavailable or fails.
const (
	ReasoningUnavailable = "AI unavailable - using default order"
	ReasoningDefault     = "Prioritized by AI"
	SummaryDefault       = "Keep up the good work!"

	fallbackTitleLength = 100
	maxTips             = 3
)

// DefaultTips are used when the backend reply carries no tips.
var DefaultTips = []string{"Stay focused", "Prioritize important tasks", "Take breaks"}

// FallbackParse builds a draft from the raw text without a backend.
func FallbackParse(text string) ParsedTaskDraft {
	return ParsedTaskDraft{
		Title:      truncate(text, fallbackTitleLength),
		Priority:   domain.PriorityMedium,
		Category:   domain.CategoryOther,
		Confidence: DefaultConfidence,
	}
}

// FallbackPrioritize keeps the input order.
func FallbackPrioritize(tasks []domain.TaskSummary, reasoning string) PrioritizeResult {
	return PrioritizeResult{Tasks: tasks, Reasoning: reasoning}
}

// FallbackCategorize always answers CategoryOther.
func FallbackCategorize() domain.Category {
	return domain.CategoryOther
}

// FallbackInsights derives a summary and tips from the stats alone.
// Tips are emitted in a fixed order and capped at three.
func FallbackInsights(stats domain.TaskStats) Insights {
	tips := make([]string, 0, maxTips)
	if stats.CompletionRate < 0.5 {
		tips = append(tips, "Try breaking large tasks into smaller ones")
	}
	if stats.ByPriority[domain.PriorityUrgent] > 3 {
		tips = append(tips, "You have many urgent tasks - consider reviewing priorities")
	}
	tips = append(tips, "Consistent daily progress leads to success")
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}

	return Insights{
		Summary: fmt.Sprintf("You have %d tasks with a %.0f%% completion rate.",
			stats.Total, stats.CompletionRate*100),
		Tips: tips,
	}
}
