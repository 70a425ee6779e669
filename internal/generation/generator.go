package generation

import "context"

// Generator sends a prompt to a language model and returns the raw text of
// its reply. Implementations do not retry; a failed call is reported once and
// the caller decides how to degrade.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
