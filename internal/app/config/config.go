package config

import (
	"pacientes-service/internal/pkg/utils"

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
		},
		Storage: Storage{
			Dir: utils.GetEnvString("STORAGE_DIR", "./data"),
			// Development fallback only; deployments provision their own key.
			SealKey: utils.GetEnvString("STORAGE_SEAL_KEY", "6368616e676520746869732070617373776f726420746f206120736563726574"),
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
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MedicationSearchPerSecond: utils.GetEnvFloat64("APP_MEDICATION_SEARCH_PER_SECOND", 2),
			MedicationSearchBurst:     utils.GetEnvInt("APP_MEDICATION_SEARCH_BURST", 5),
		},
		Backend: Backend{
			BaseUrl:          utils.GetEnvString("BACKEND_BASE_URL", "https://app-pacientes-server-production.up.railway.app/app-pacientes-server/api"),
			TimeoutInSeconds: utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 15),
		},
		Session: Session{
			StoreBackend: utils.GetEnvString("SESSION_STORE_BACKEND", "file"),
			DefaultTheme: utils.GetEnvString("SESSION_DEFAULT_THEME", "light"),
		},
	}
}
