package routers

import (
	"fmt"
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	m *middlewares.Middlewares,
	studioController *controllers.StudioController,
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
	calendarController *controllers.CalendarController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(m.RequestIDMiddleware)
	router.Use(m.Logging(m.Log))
	router.Use(m.ErrorHandler)

	// Mutations share a stricter per-client budget than reads.
	mutationLimiter := middlewares.NewMutationRateLimiter(
		internalConfig.Booking.MutationRatePerSecond,
		internalConfig.Booking.MutationBurst,
		time.Duration(internalConfig.Booking.MutationClientTTLInMinutes)*time.Minute,
	)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(m.BodyBuffer)
				r.Use(m.Authenticate)
				r.Use(m.Authorize)

				r.Route("/studios", func(r chi.Router) {
					attachStudioRoutes(r, m, studioController)
					attachAvailabilityRoutes(r, m, availabilityController, mutationLimiter)
				})

				r.Route("/bookings", func(r chi.Router) {
					attachBookingRoutes(r, m, bookingController, mutationLimiter)
				})

				r.Route("/calendar", func(r chi.Router) {
					attachCalendarRoutes(r, m, calendarController)
				})
			})
		})
	})
}
