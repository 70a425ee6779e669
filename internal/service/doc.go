// Package service contains the application use cases. It coordinates the
// task stores, the transaction boundary and the AI assistant to fulfill the
// operations exposed by the API layer.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete infrastructure implementation. Expected conditions are
// reported as sentinel errors (ErrTaskNotFound, ErrNoTasksFound); anything
// else is wrapped in a TaskServiceError carrying the failed operation.
package service
