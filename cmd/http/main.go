package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/controllers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/middlewares"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/delivery/http/routers"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/drivers/database"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/drivers/logger"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/drivers/messaging"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/artists"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/availability"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/bookings"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/calendar"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/session"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/core/studios"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/shared/events"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/shared/locker"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Postgres:       postgresDB,
		Mongo:          mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to release resources cleanly", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Change events
	changeEventPublisher, err := events.NewChangeEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Booking.RabbitMQChangeEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize change event publisher", zap.Error(err))
	}

	// RBAC
	enforcer, err := casbin.NewEnforcer(
		bootstrap.InternalConfig.RBAC.ModelPath,
		bootstrap.InternalConfig.RBAC.PolicyPath,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize RBAC enforcer", zap.Error(err))
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig, enforcer)

	// Studio
	studioRepository := studios.NewStudioPostgresRepository(bootstrap.Postgres)
	studioUsecase := studios.NewStudioUsecase(studioRepository, bootstrap.Logger)
	studioController := controllers.NewStudioController(studioUsecase, bootstrap.Logger)

	// Artist
	artistRepository := artists.NewArtistPostgresRepository(bootstrap.Postgres)

	// Availability
	availabilityRepository := availability.NewAvailabilityPostgresRepository(bootstrap.Postgres)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityRepository,
		studioRepository,
		redisRepository,
		lockerService,
		sessionService,
		changeEventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, bootstrap.Logger)

	// Booking
	bookingRepository := bookings.NewBookingPostgresRepository(bootstrap.Postgres)
	bookingEventRepository := bookings.NewBookingEventMongoRepository(
		bootstrap.Mongo,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		availabilityRepository,
		studioRepository,
		artistRepository,
		bookingEventRepository,
		sessionService,
		changeEventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bookingUsecase, bootstrap.Logger)

	// Calendar
	calendarUsecase := calendar.NewCalendarUsecase(
		availabilityRepository,
		bookingRepository,
		studioRepository,
		artistRepository,
		sessionService,
		bootstrap.Logger,
	)
	calendarController := controllers.NewCalendarController(calendarUsecase, bootstrap.Logger)

	// Completion worker
	completionWorker := bookings.NewCompletionWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		bookingUsecase,
	)
	completionWorker.Start(context.Background())
	bootstrap.WorkerStop = completionWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		studioController,
		availabilityController,
		bookingController,
		calendarController,
	)
}
