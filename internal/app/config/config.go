package config

import (
	"internistika-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "internistika"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			Address:             utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Asia/Tashkent"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AuthMaxAttempts:     utils.GetEnvInt("APP_AUTH_MAX_ATTEMPTS", 10),
			AuthWindowInMinutes: utils.GetEnvInt("APP_AUTH_WINDOW_IN_MINUTES", 15),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 23),
		},
		Minio: AppMinio{
			BucketName:                  utils.GetEnvString("MINIO_BUCKET_NAME", "visit-media"),
			PresignedURLExpiryInMinutes: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTES", 15),
		},
		RabbitMQ: AppRabbitMQ{
			ReminderQueue:        utils.GetEnvString("APP_RABBITMQ_REMINDER_QUEUE", "appointment_reminder_queue"),
			PublishRatePerSecond: utils.GetEnvInt("APP_RABBITMQ_PUBLISH_RATE_PER_SECOND", 20),
		},
	}
}
