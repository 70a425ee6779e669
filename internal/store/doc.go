// Package store defines interfaces for task persistence.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
// The Postgres implementations live in internal/platform/postgres.
package store
