package config

import (
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", "8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Address:                      utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Riyadh"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:               utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:    utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:   utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ItemsPerPage:                 utils.GetEnvInt("APP_ITEMS_PER_PAGE", constvars.DefaultItemsPerPage),
			StatisticsAttendanceLimit:    utils.GetEnvInt("APP_STATISTICS_ATTENDANCE_LIMIT", 1000),
			StatisticsAttendanceMaxPages: utils.GetEnvInt("APP_STATISTICS_ATTENDANCE_MAX_PAGES", 50),
			ReportLockTTLInSeconds:       utils.GetEnvInt("APP_REPORT_LOCK_TTL_IN_SECONDS", 120),
		},
		Backend: AppBackend{
			BaseUrl: utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:4000/api/v1"),
		},
		ViewCache: AppViewCache{
			Enabled:      utils.GetEnvBool("APP_VIEW_CACHE_ENABLED", true),
			TTLInSeconds: utils.GetEnvInt("APP_VIEW_CACHE_TTL_IN_SECONDS", 300),
		},
		Minio: AppMinio{
			ReportBucketName:                         utils.GetEnvString("APP_MINIO_REPORT_BUCKET_NAME", "dashboard-reports"),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			InvalidationExchange: utils.GetEnvString("APP_RABBITMQ_INVALIDATION_EXCHANGE", "dashboard.view_invalidations"),
		},
		Tracing: AppTracing{
			Enabled:     utils.GetEnvBool("APP_OTEL_ENABLED", true),
			Endpoint:    utils.GetEnvString("APP_OTEL_ENDPOINT", ""),
			ServiceName: utils.GetEnvString("APP_OTEL_SERVICE_NAME", "dashboard-service"),
		},
	}
}
