// Package generation defines the boundary between the AI assistant and the
// external LLM service (Gemini) it uses for content generation. The Generator
// interface is the single primitive the assistant depends on: send a prompt,
// receive raw text. Adapters live under internal/platform.
package generation
