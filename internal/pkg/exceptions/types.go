package exceptions

import (
	"fmt"
	"pacientes-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevMissingRequestID)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevCreateHTTPRequest)
	}
	ErrVerificationInFlight = func() *CustomError {
		return BuildNewCustomError(nil, KindInternal, constvars.StatusConflict, constvars.ErrClientScanInProgress, constvars.ErrDevVerificationInFlight)
	}
	ErrRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusTooManyRequests, constvars.ErrClientSomethingWrong, constvars.ErrDevRequestRateLimited)
	}
)

// Scan parsing errors. These surface as a retry prompt at the scan step
// and never reach the backend.
var (
	ErrScanTooFewFields = func(minFields int) *CustomError {
		return BuildNewCustomError(nil, KindScanParse, constvars.StatusUnprocessableEntity, constvars.ErrClientScanUnreadable, fmt.Sprintf(constvars.ErrDevScanTooFewFields, minFields))
	}
	ErrScanNoDNI = func() *CustomError {
		return BuildNewCustomError(nil, KindScanParse, constvars.StatusUnprocessableEntity, constvars.ErrClientScanUnreadable, constvars.ErrDevScanNoDNI)
	}
)

// Backend errors. ErrBackendNoResponse marks transport-level failures so
// callers can branch on retryability; ErrBackendStatus carries whatever
// the server said, falling back to the per-status Spanish message.
var (
	ErrBackendNoResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusServiceUnavailable, constvars.ErrClientNoServerResponse, fmt.Sprintf(constvars.ErrDevBackendNoResponse, resource))
	}
	ErrBackendStatus = func(statusCode int, serverMessage, resource string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = clientMessageForStatus(statusCode)
		}
		return BuildNewCustomError(nil, KindServer, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, statusCode, resource))
	}
	ErrBackendDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevBackendDecodeResponse, resource))
	}
)

// Storage errors never surface to the patient; callers log them and
// degrade to the default or previous in-memory value.
var (
	ErrStorageRead = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindPersistence, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevStorageRead, key))
	}
	ErrStorageWrite = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindPersistence, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevStorageWrite, key))
	}
	ErrStorageDelete = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindPersistence, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevStorageDelete, key))
	}
	ErrStorageUnseal = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindPersistence, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevStorageUnseal, key))
	}
)

func clientMessageForStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusBadRequest:
		return constvars.ErrClientBadRequest
	case constvars.StatusNotFound:
		return constvars.ErrClientNotFound
	case constvars.StatusConflict:
		return constvars.ErrClientAlreadyExists
	case constvars.StatusInternalServerError:
		return constvars.ErrClientServerFailure
	default:
		return fmt.Sprintf(constvars.ErrClientStatusFormat, statusCode)
	}
}
