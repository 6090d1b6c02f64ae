package config

type InternalConfig struct {
	App     App        `mapstructure:"app"`
	JWT     AppJWT     `mapstructure:"jwt"`
	Booking AppBooking `mapstructure:"booking"`
	Editor  AppEditor  `mapstructure:"editor"`
	RBAC    AppRBAC    `mapstructure:"rbac"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// InstantBook confirms artist booking requests immediately instead of
	// leaving them pending for the studio owner.
	InstantBook bool `mapstructure:"instant_book"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppBooking struct {
	// CompletionWorkerCronSpec schedules the sweep that marks elapsed
	// confirmed bookings completed (e.g. "@every 5m").
	CompletionWorkerCronSpec   string `mapstructure:"completion_worker_cron_spec"`
	CompletionBatchSize        int    `mapstructure:"completion_batch_size"`
	WorkerLockTTLInMinutes     int    `mapstructure:"worker_lock_ttl_in_minutes"`
	RabbitMQChangeEventsQueue  string `mapstructure:"rabbitmq_change_events_queue"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	MutationRatePerSecond      int    `mapstructure:"mutation_rate_per_second"`
	MutationBurst              int    `mapstructure:"mutation_burst"`
	MutationClientTTLInMinutes int    `mapstructure:"mutation_client_ttl_in_minutes"`
}

type AppEditor struct {
	StagingTTLInMinutes int `mapstructure:"staging_ttl_in_minutes"`
	DayLockTTLInSeconds int `mapstructure:"day_lock_ttl_in_seconds"`
}

type AppRBAC struct {
	ModelPath  string `mapstructure:"model_path"`
	PolicyPath string `mapstructure:"policy_path"`
}
