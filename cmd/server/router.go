package main

import (
	"net/http"

	"github.com/Harsha0o/ai-productivity-assistant/internal/api"
	apiMiddleware "github.com/Harsha0o/ai-productivity-assistant/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	api.RegisterRoutes(r, api.Handlers{
		System: api.NewSystemHandler(app.db, app.assistant.IsAvailable(), version),
		Tasks:  api.NewTaskHandler(app.taskService, app.logger),
		AI:     api.NewAIHandler(app.aiService),
	})

	return app.corsHandler()(r)
}

// corsHandler applies the configured CORS policy. Credentials are only
// allowed for an explicit origin list.
func (app *application) corsHandler() func(http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-Id"}),
		handlers.ExposedHeaders([]string{"X-Request-Id"}),
	}

	if app.config.Server.AllowsAnyOrigin() {
		opts = append(opts, handlers.AllowedOrigins([]string{"*"}))
	} else {
		opts = append(opts,
			handlers.AllowedOrigins(app.config.Server.AllowedOrigins()),
			handlers.AllowCredentials(),
		)
	}

	return handlers.CORS(opts...)
}
