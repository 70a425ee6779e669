package api

import "github.com/go-chi/chi/v5"

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	System *SystemHandler
	Tasks  *TaskHandler
	AI     *AIHandler
}

// RegisterRoutes adds every API route to r.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Get("/", h.System.Root)
	r.Get("/health", h.System.Health)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.Tasks.ListTasks)
		r.Post("/", h.Tasks.CreateTask)
		r.Get("/{id}", h.Tasks.GetTask)
		r.Put("/{id}", h.Tasks.UpdateTask)
		r.Delete("/{id}", h.Tasks.DeleteTask)
	})

	r.Route("/ai", func(r chi.Router) {
		r.Get("/status", h.AI.Status)
		r.Post("/parse", h.AI.Parse)
		r.Post("/parse-and-create", h.AI.ParseAndCreate)
		r.Post("/prioritize", h.AI.Prioritize)
		r.Post("/categorize/{task_id}", h.AI.Categorize)
		r.Get("/insights", h.AI.Insights)
	})
}
