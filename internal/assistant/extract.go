package assistant

import (
	"regexp"
	"strings"

	"github.com/Harsha0o/ai-productivity-assistant/internal/jsonx"
)

var (
	leadingFence  = regexp.MustCompile("^```\\w*\\n?")
	trailingFence = regexp.MustCompile("\\n?```$")
	flatObject    = regexp.MustCompile(`\{[^{}]*\}`)
)

// ExtractJSON finds the JSON object in a raw backend reply.
//
// Surrounding whitespace and a Markdown code fence are stripped before the
// text is decoded. When that fails, the first brace-delimited object without
// nested braces is tried instead. If nothing decodes to an object, an empty
// Payload is returned.
func ExtractJSON(raw string) Payload {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = leadingFence.ReplaceAllString(text, "")
		text = trailingFence.ReplaceAllString(text, "")
	}

	if p, ok := decodeObject(text); ok {
		return p
	}

	if match := flatObject.FindString(text); match != "" {
		if p, ok := decodeObject(match); ok {
			return p
		}
	}

	return Payload{}
}

// decodeObject decodes text when it holds exactly one JSON object.
func decodeObject(text string) (Payload, bool) {
	var value any
	if err := jsonx.UnmarshalString(text, &value); err != nil {
		return nil, false
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return Payload(obj), true
}
