package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public surface and the session-gated editor surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, session sessionMiddleware, startupTime time.Time) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public surface
		r.Post("/auth", handlers.profileHandler.authenticate())
		r.Get("/profile/{slug}", handlers.profileHandler.getProfile())
		r.Post("/profile/register", handlers.profileHandler.register())
		r.Get("/links", handlers.linkHandler.getLinks())
		r.Get("/links/{slug}", handlers.linkHandler.getActiveLinks())
		r.Post("/leads", handlers.leadHandler.createLead())
		r.Get("/health", healthHandler(startupTime))

		// Editor surface: every mutation re-validates the session
		r.Group(func(r chi.Router) {
			r.Use(session.authenticate)

			r.Put("/profile", handlers.profileHandler.patchProfile())
			r.Post("/links", handlers.linkHandler.createLink())
			r.Put("/links", handlers.linkHandler.replaceLink())
			r.Delete("/links", handlers.linkHandler.deleteLink())
			r.Post("/links/reorder", handlers.linkHandler.reorderLinks())
		})
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, http.StatusOK, healthResponse{
			Success: true,
			Message: "ok",
			Uptime:  time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
