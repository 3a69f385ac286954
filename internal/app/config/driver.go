package config

type (
	DriverConfig struct {
		Redis   Redis
		Storage Storage
		Logger  Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	// Storage configures the file-backed device store. SealKey is a
	// 64-char hex string; the decoded 32 bytes seal every stored value.
	Storage struct {
		Dir     string
		SealKey string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
