// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between HTTP clients and the
// task and AI services, translating HTTP concerns to service operations.
package api
