package config

import (
	"github.com/joho/godotenv"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:         utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:         utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:     utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password:     utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
			DbName:       utils.GetEnvString("POSTGRES_DB_NAME", "inkspace_scheduling"),
			SSLMode:      utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns: utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns: utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "inkspace_audit"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Berlin"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			InstantBook:                utils.GetEnvBool("APP_INSTANT_BOOK", false),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Booking: AppBooking{
			CompletionWorkerCronSpec:   utils.GetEnvString("BOOKING_COMPLETION_WORKER_CRON_SPEC", "@every 5m"),
			CompletionBatchSize:        utils.GetEnvInt("BOOKING_COMPLETION_BATCH_SIZE", 100),
			WorkerLockTTLInMinutes:     utils.GetEnvInt("BOOKING_WORKER_LOCK_TTL_IN_MINUTES", 2),
			RabbitMQChangeEventsQueue:  utils.GetEnvString("BOOKING_RABBITMQ_CHANGE_EVENTS_QUEUE", "scheduling_change_events"),
			RequestTimeoutInSeconds:    utils.GetEnvInt("BOOKING_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MutationRatePerSecond:      utils.GetEnvInt("BOOKING_MUTATION_RATE_PER_SECOND", 5),
			MutationBurst:              utils.GetEnvInt("BOOKING_MUTATION_BURST", 10),
			MutationClientTTLInMinutes: utils.GetEnvInt("BOOKING_MUTATION_CLIENT_TTL_IN_MINUTES", 3),
		},
		Editor: AppEditor{
			StagingTTLInMinutes: utils.GetEnvInt("EDITOR_STAGING_TTL_IN_MINUTES", 30),
			DayLockTTLInSeconds: utils.GetEnvInt("EDITOR_DAY_LOCK_TTL_IN_SECONDS", 15),
		},
		RBAC: AppRBAC{
			ModelPath:  utils.GetEnvString("RBAC_MODEL_PATH", "resources/rbac_model.conf"),
			PolicyPath: utils.GetEnvString("RBAC_POLICY_PATH", "resources/rbac_policy.csv"),
		},
	}
}
