package exceptions

import (
	"fmt"
	"pacientes-service/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a failure so callers can branch without inspecting
// status codes: a network failure (no response reached the client) is
// retryable in a way a server rejection is not, and persistence failures
// must never surface to the patient at all.
type Kind string

const (
	KindScanParse   Kind = "scan_parse"
	KindNetwork     Kind = "network"
	KindServer      Kind = "server"
	KindPersistence Kind = "persistence"
	KindInternal    Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	Kind          Kind     `json:"-"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          kind,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// IsKind reports whether err is a CustomError of the given kind.
func IsKind(err error, kind Kind) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.Kind == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
