package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType  = "Content-Type"
	HeaderXAppVersion  = "X-App-Version"
	HeaderXAppPlatform = "X-App-Platform"
	HeaderXRequestID   = "X-Request-ID"
	HeaderXDNIData     = "X-DNI-Data"
)

const (
	URLParamPatientID = "patient_id"
	URLParamDNI       = "dni"

	URLQueryParamSearch = "q"
)
