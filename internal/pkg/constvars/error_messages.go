package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "es obligatorio",
	"email":    "debe ser un email válido",
	"numeric":  "debe ser un número",
	"min":      "debe tener al menos %s caracteres",
	"max":      "debe tener como máximo %s caracteres",
	"len":      "debe tener %s caracteres",
	"oneof":    "debe ser uno de [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages shown to the patient. The app ships in Spanish.
const (
	ErrClientCannotProcessRequest = "No se pudo procesar la solicitud. Verificá los datos."
	ErrClientSomethingWrong       = "Ocurrió un error en la aplicación. Intentá más tarde."
	ErrClientNoServerResponse     = "No se recibió respuesta del servidor."
	ErrClientConnection           = "Error de conexión. Verificá tu conexión a internet."
	ErrClientBadRequest           = "Solicitud incorrecta. Verifica los datos."
	ErrClientNotFound             = "Recurso no encontrado."
	ErrClientAlreadyExists        = "Ya existe un registro con esos datos."
	ErrClientServerFailure        = "Error en el servidor. Intenta más tarde."
	ErrClientStatusFormat         = "Error %d"
	ErrClientScanUnreadable       = "No se pudo leer el DNI. Por favor, intenta nuevamente."
	ErrClientRegisterFailed       = "No se pudo completar el registro."
	ErrClientScanInProgress       = "Ya hay una verificación en curso. Esperá un momento."
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate      = "cannot parse the requested date"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevMissingRequestID     = "request ID missing from context"
	ErrDevRequestRateLimited   = "request dropped by the outbound rate limiter"
	ErrDevVerificationInFlight = "a scan verification is already in flight"

	// Backend messages
	ErrDevBackendStatus         = "backend responded with status %d for %s"
	ErrDevBackendNoResponse     = "no response received from backend for %s"
	ErrDevBackendDecodeResponse = "failed to decode backend %s response"

	// Scanner messages
	ErrDevScanTooFewFields = "payload has fewer than %d @-delimited fields"
	ErrDevScanNoDNI        = "no 7-8 digit document number found in payload"

	// Storage messages
	ErrDevStorageRead      = "failed to read key %q from session storage"
	ErrDevStorageWrite     = "failed to write key %q to session storage"
	ErrDevStorageDelete    = "failed to delete key %q from session storage"
	ErrDevStorageUnseal    = "failed to unseal stored value for key %q"
	ErrDevStorageCorrupted = "stored value for key %q is not valid JSON"

	// Validation messages
	ErrDevValidationFailed = "validation failed"
)
