package routers

import (
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.CalendarController) {
	router.Get("/month", c.GetMonthGrid)
}
