package routers

import (
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AvailabilityController, mutationLimiter *middlewares.MutationRateLimiter) {
	mutation := m.MutationRateLimit(mutationLimiter)

	router.Route("/{studioID}/availability", func(r chi.Router) {
		r.Get("/", c.GetDateAvailability)
		r.With(mutation).Delete("/windows/{windowID}", c.RemoveWindow)

		r.Route("/editor", func(r chi.Router) {
			r.Get("/", c.GetEditorState)
			r.With(mutation).Post("/date", c.SelectEditorDate)
			r.With(mutation).Post("/windows", c.StageWindow)
			r.With(mutation).Post("/commit", c.CommitWindow)
			r.With(mutation).Delete("/windows/{stagedIndex}", c.RemoveStagedWindow)
		})
	})
}
