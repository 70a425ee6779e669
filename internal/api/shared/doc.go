// Package shared holds the HTTP helpers used by both the handlers and the
// middleware: JSON request decoding and validation, JSON responses with
// sanitized errors, and per-request trace ids.
package shared
