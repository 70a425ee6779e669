package assistant

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

// Template names
const (
	parsePrompt      = "parse.tmpl"
	prioritizePrompt = "prioritize.tmpl"
	categorizePrompt = "categorize.tmpl"
	insightsPrompt   = "insights.tmpl"
)

// maxInsightTitles bounds how many recent titles an insights prompt includes.
const maxInsightTitles = 5

func renderPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", name, err)
	}
	return buf.String(), nil
}

type parseData struct {
	Text  string
	Today string
}

func newParseData(text string, now time.Time) parseData {
	return parseData{Text: text, Today: now.Format("2006-01-02")}
}

type prioritizeLine struct {
	ID       int64
	Title    string
	Due      string
	Category domain.Category
}

type prioritizeData struct {
	Tasks []prioritizeLine
}

func newPrioritizeData(tasks []domain.TaskSummary) prioritizeData {
	lines := make([]prioritizeLine, 0, len(tasks))
	for _, t := range tasks {
		due := "none"
		if t.DueDate != nil {
			due = *t.DueDate
		}
		lines = append(lines, prioritizeLine{ID: t.ID, Title: t.Title, Due: due, Category: t.Category})
	}
	return prioritizeData{Tasks: lines}
}

type categorizeData struct {
	Categories  string
	Title       string
	Description string
}

func newCategorizeData(title, description string) categorizeData {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return categorizeData{
		Categories:  strings.Join(names, ", "),
		Title:       title,
		Description: description,
	}
}

type insightsData struct {
	Total          int
	Completed      int
	CompletionRate string
	ByCategory     string
	ByPriority     string
	RecentTitles   string
}

func newInsightsData(tasks []domain.TaskSummary, stats domain.TaskStats) insightsData {
	if len(tasks) > maxInsightTitles {
		tasks = tasks[:maxInsightTitles]
	}
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, strconv.Quote(t.Title))
	}

	byCategory := make(map[string]int, len(stats.ByCategory))
	for c, n := range stats.ByCategory {
		byCategory[string(c)] = n
	}
	byPriority := make(map[string]int, len(stats.ByPriority))
	for p, n := range stats.ByPriority {
		byPriority[string(p)] = n
	}

	return insightsData{
		Total:          stats.Total,
		Completed:      stats.Completed,
		CompletionRate: fmt.Sprintf("%.1f%%", stats.CompletionRate*100),
		ByCategory:     formatCounts(byCategory),
		ByPriority:     formatCounts(byPriority),
		RecentTitles:   "[" + strings.Join(titles, ", ") + "]",
	}
}

// formatCounts renders counts as "a: 1, b: 2" with keys sorted.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}
