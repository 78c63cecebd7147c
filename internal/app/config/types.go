package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                 string
		Port                string
		Address             string
		Timezone            string
		EndpointPrefix      string
		MaxRequests         int
		ShutdownTimeout     int
		AuthMaxAttempts     int
		AuthWindowInMinutes int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName                  string
		PresignedURLExpiryInMinutes int
	}

	AppRabbitMQ struct {
		ReminderQueue        string
		PublishRatePerSecond int
	}
)
