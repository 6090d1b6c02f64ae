package routers

import (
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStudioRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.StudioController) {
	router.Get("/{studioID}", c.GetStudioByID)
}
