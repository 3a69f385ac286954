package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingDNIKey        = "dni"
	LoggingPatientIDKey  = "patient_id"
	LoggingStorageKeyKey = "storage_key"
	LoggingErrorTypeKey  = "error_type"
	LoggingOutcomeKey    = "outcome"
)
