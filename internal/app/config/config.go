package config

import (
	"monteluz-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "America/Lima"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Supabase: Supabase{
			BaseUrl: utils.GetEnvString("SUPABASE_URL", ""),
			APIKey:  utils.GetEnvString("SUPABASE_KEY", ""),
		},
	}
}
