// Package assistant turns free-form text and task lists into structured,
// domain-valid results with the help of a text generation backend.
//
// Every backend reply goes through the same pipeline: ExtractJSON locates the
// JSON object in the raw reply, and the validators coerce each field into its
// domain. When the backend is unavailable, or any step of the pipeline fails,
// the Assistant answers with a deterministic fallback instead. Callers never
// receive an error from the Assistant's operations.
package assistant
