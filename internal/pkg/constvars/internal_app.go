package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PCNTS_SVC_"
)

// Storage keys carried over from the device AsyncStorage contract. The
// session store persists exactly these two logical keys.
const (
	StorageKeyPatient = "@patient_data"
	StorageKeyTheme   = "@app_theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

const (
	SexMale        = "M"
	SexFemale      = "F"
	SexUnspecified = "X"
)

const (
	AppPlatformMobile = "mobile"
)

// Backend resource paths, relative to the configured API base URL.
const (
	ResourcePatients         = "/patients"
	ResourcePatientCheck     = "/patients/check"
	ResourcePrescriptions    = "/prescriptions/dni"
	ResourceStudies          = "/prescriptions/studies/dni"
	ResourceCertificates     = "/prescriptions/certificates/dni"
	ResourceObrasSociales    = "/obras-sociales"
	ResourceMedicationSearch = "/medications/search"
)

// DNIPayloadMinFields is the minimum number of @-delimited fields a PDF417
// document payload must carry before positional extraction is trusted.
const DNIPayloadMinFields = 8
