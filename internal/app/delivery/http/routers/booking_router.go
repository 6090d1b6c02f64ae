package routers

import (
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.BookingController, mutationLimiter *middlewares.MutationRateLimiter) {
	mutation := m.MutationRateLimit(mutationLimiter)

	router.With(mutation).Post("/", c.RequestBooking)
	router.With(mutation).Post("/{bookingID}/confirm", c.ConfirmBooking)
	router.With(mutation).Post("/{bookingID}/cancel", c.CancelBooking)
	router.Get("/month", c.GetMonthBookings)
	router.Get("/day", c.GetDayBookings)
}
