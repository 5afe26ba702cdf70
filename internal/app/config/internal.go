package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Backend   AppBackend   `mapstructure:"backend"`
	ViewCache AppViewCache `mapstructure:"view_cache"`
	Minio     AppMinio     `mapstructure:"minio"`
	RabbitMQ  AppRabbitMQ  `mapstructure:"rabbitmq"`
	Tracing   AppTracing   `mapstructure:"tracing"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	// ItemsPerPage is the list page size used when a caller sends no limit.
	ItemsPerPage int `mapstructure:"items_per_page"`
	// StatisticsAttendanceLimit is the page size used while reading every
	// attendance entry for one statistics aggregation.
	StatisticsAttendanceLimit int `mapstructure:"statistics_attendance_limit"`
	// StatisticsAttendanceMaxPages stops an aggregation that would need more
	// pages than this instead of reporting partial counts.
	StatisticsAttendanceMaxPages int `mapstructure:"statistics_attendance_max_pages"`
	// ReportLockTTLInSeconds caps how long one report export may hold the
	// export lock.
	ReportLockTTLInSeconds int `mapstructure:"report_lock_ttl_in_seconds"`
}

type AppBackend struct {
	BaseUrl string `mapstructure:"base_url"`
}

type AppViewCache struct {
	Enabled      bool `mapstructure:"enabled"`
	TTLInSeconds int  `mapstructure:"ttl_in_seconds"`
}

type AppMinio struct {
	ReportBucketName                         string `mapstructure:"report_bucket_name"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	InvalidationExchange string `mapstructure:"invalidation_exchange"`
}

type AppTracing struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}
