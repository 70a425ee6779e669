package domain

// TaskStats holds aggregate counts over all tasks.
type TaskStats struct {
	Total          int              `json:"total"`
	Completed      int              `json:"completed"`
	CompletionRate float64          `json:"completion_rate"`
	ByCategory     map[Category]int `json:"by_category"`
	ByPriority     map[Priority]int `json:"by_priority"`
}

// NewTaskStats builds TaskStats and derives the completion rate, which is 0
// when there are no tasks.
func NewTaskStats(total, completed int, byCategory map[Category]int, byPriority map[Priority]int) TaskStats {
	if byCategory == nil {
		byCategory = map[Category]int{}
	}
	if byPriority == nil {
		byPriority = map[Priority]int{}
	}

	var rate float64
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	return TaskStats{
		Total:          total,
		Completed:      completed,
		CompletionRate: rate,
		ByCategory:     byCategory,
		ByPriority:     byPriority,
	}
}
