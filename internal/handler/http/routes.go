package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// set before any route so that sub-routers inherit them
	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	router.Use(middleware.SetHeader("X-Frame-Options", "SAMEORIGIN"))
	router.Use(h.withClientMetadata)
	router.Use(h.withTimeout)

	router.Get("/", h.index)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/onboarding", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/status", h.getOnboardingStatus)
			r.Patch("/step", h.updateOnboardingStep)
			r.Post("/complete", h.completeOnboarding)
			r.Post("/reset", h.resetOnboarding)
		})
	})

	return router
}
