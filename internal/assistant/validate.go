package assistant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
)

// DefaultTitle is used when a parsed task carries no usable title.
const DefaultTitle = "New Task"

// DefaultConfidence is used when a parsed task carries no confidence score.
const DefaultConfidence = 0.5

var (
	// ErrInvalidConfidence is returned when a parsed task's confidence score is
	// not numeric.
	ErrInvalidConfidence = errors.New("confidence is not a number")

	// ErrInvalidTitle is returned when a parsed task carries a title that is
	// not a string, including null.
	ErrInvalidTitle = errors.New("title is not a string")
)

// ParsedTaskDraft is a task produced from natural language, normalized into
// valid domain values but not yet persisted.
type ParsedTaskDraft struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Category    domain.Category `json:"category"`
	// DueDate is the backend's text, passed through without calendar checks.
	DueDate    *string `json:"due_date"`
	Confidence float64 `json:"confidence"`
}

// ValidateParsedTask normalizes a decoded backend reply into a draft.
// Missing or invalid fields take defaults. It fails when a title is present
// but not a string, or when confidence cannot be read as a number.
func ValidateParsedTask(p Payload) (ParsedTaskDraft, error) {
	confidence, err := confidenceOf(p)
	if err != nil {
		return ParsedTaskDraft{}, err
	}

	title := DefaultTitle
	if p.Has("title") {
		s, ok := p.String("title")
		if !ok {
			return ParsedTaskDraft{}, fmt.Errorf("%w: %v", ErrInvalidTitle, p["title"])
		}
		title = s
	}

	draft := ParsedTaskDraft{
		Title:       truncate(title, domain.MaxTitleLength),
		Description: optionalString(p, "description"),
		Priority:    domain.PriorityMedium,
		Category:    domain.CategoryOther,
		DueDate:     optionalString(p, "due_date"),
		Confidence:  confidence,
	}

	if s, ok := p.String("priority"); ok && domain.Priority(s).IsValid() {
		draft.Priority = domain.Priority(s)
	}
	if s, ok := p.String("category"); ok && domain.Category(s).IsValid() {
		draft.Category = domain.Category(s)
	}

	return draft, nil
}

// ValidateCategory lower-cases and trims text and returns it when it names a
// known category, otherwise CategoryOther.
func ValidateCategory(text string) domain.Category {
	c := domain.Category(strings.ToLower(strings.TrimSpace(text)))
	if c.IsValid() {
		return c
	}
	return domain.CategoryOther
}

func confidenceOf(p Payload) (float64, error) {
	if !p.Has("confidence") {
		return DefaultConfidence, nil
	}

	var f float64
	switch v := p["confidence"].(type) {
	case float64:
		f = v
	case bool:
		if v {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidConfidence, v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfidence, v)
	}

	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN", ErrInvalidConfidence)
	}
	return math.Min(math.Max(f, 0), 1), nil
}

func optionalString(p Payload, key string) *string {
	s, ok := p.String(key)
	if !ok {
		return nil
	}
	return &s
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
