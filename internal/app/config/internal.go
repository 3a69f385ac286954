package config

type InternalConfig struct {
	App     App
	Backend Backend
	Session Session
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	// MedicationSearchPerSecond/Burst bound outbound medication queries;
	// type-ahead callers otherwise hammer the backend on every keystroke.
	MedicationSearchPerSecond float64
	MedicationSearchBurst     int
}

type Backend struct {
	BaseUrl          string
	TimeoutInSeconds int
}

type Session struct {
	// StoreBackend selects where the resident identity is persisted:
	// "file" for on-device storage, "redis" for shared kiosk deployments.
	StoreBackend string
	DefaultTheme string
}
