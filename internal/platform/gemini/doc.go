// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the AI assistant to the external Gemini service. It sends a
// single prompt, enforces a per-call timeout, and translates the response
// into plain text:
//
//   - transport failures and timeouts are reported as generation.ErrGenerationFailed
//   - safety blocks are reported as generation.ErrContentBlocked
//   - empty or candidate-less replies are reported as generation.ErrInvalidResponse
//
// The adapter never retries. Callers decide how to degrade.
package gemini
