// Package router sets up all HTTP routes and middleware chains for the
// PageCraft API. AI-backed endpoints sit behind a stricter rate limit than
// the plain CRUD routes because each call costs provider money.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"pagecraft/internal/handlers"
	"pagecraft/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", api.Health)

	aiLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Registries — read-only, no database behind them.
		r.Get("/templates", api.TemplatesList)
		r.Get("/section-types", api.SectionTypes)

		// AI provider management.
		r.Get("/ai/providers", api.AIProviders)
		r.Put("/ai/provider", api.AISetProvider)

		// Pages
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.PagesList)
			r.Post("/", api.PageCreate)

			r.With(aiLimiter.Middleware).Post("/generate", api.PageGenerate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", api.PageGet)
				r.Put("/", api.PageUpdate)
				r.Delete("/", api.PageDelete)
				r.Put("/theme", api.ThemeUpdate)
				r.Post("/sections", api.SectionCreate)
				r.Put("/sections/reorder", api.SectionsReorder)
			})
		})

		// Sections
		r.Route("/sections/{id}", func(r chi.Router) {
			r.Get("/", api.SectionGet)
			r.Put("/", api.SectionUpdate)
			r.Delete("/", api.SectionDelete)
			r.Put("/style", api.SectionStyle)
			r.Put("/visibility", api.SectionVisibility)
			r.Put("/variant", api.SectionVariant)
			r.Post("/variants", api.SectionVariantAdd)

			r.With(aiLimiter.Middleware).Post("/edit", api.SectionEdit)
			r.With(aiLimiter.Middleware).Post("/switch-template", api.SectionSwitchTemplate)
		})
	})

	return r
}
