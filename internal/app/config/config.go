package config

import (
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "health_records"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8090"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Collaborator: AppCollaborator{
			BaseUrl:                 utils.GetEnvString("COLLABORATOR_BASE_URL", "http://localhost:8080/api/v1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_COLLABORATOR_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvFloat("APP_COLLABORATOR_MAX_REQUESTS_PER_SECOND", 20),
			Burst:                   utils.GetEnvInt("APP_COLLABORATOR_BURST", 5),
		},
		Directory: AppDirectory{
			Source:                         utils.GetEnvString("APP_DIRECTORY_SOURCE", constvars.DirectorySourceREST),
			LockDriver:                     utils.GetEnvString("APP_SUBMISSION_LOCK_DRIVER", constvars.LockDriverRedis),
			SubmissionLockTimeoutInSeconds: utils.GetEnvInt("APP_SUBMISSION_LOCK_TIMEOUT_IN_SECONDS", 30),
			ViewIdleTimeoutInMinutes:       utils.GetEnvInt("APP_VIEW_IDLE_TIMEOUT_IN_MINUTES", 30),
			ViewSweepCronSpec:              utils.GetEnvString("APP_VIEW_SWEEP_CRON_SPEC", "@every 1m"),
			MaxNotificationsPerView:        utils.GetEnvInt("APP_MAX_NOTIFICATIONS_PER_VIEW", 20),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", ""),
		},
	}
}
