package exceptions

import (
	"dashboard-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// ErrorKind classifies a failure so callers can branch on it without
// parsing messages.
type ErrorKind string

const (
	KindRequest    ErrorKind = "request"
	KindTransport  ErrorKind = "transport"
	KindTimeout    ErrorKind = "timeout"
	KindBackend    ErrorKind = "backend"
	KindDecode     ErrorKind = "decode"
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Kind          ErrorKind  `json:"-"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return newCustomError(err, KindInternal, statusCode, clientMessage, devMessage)
}

func buildKindedError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	return newCustomError(err, kind, statusCode, clientMessage, devMessage)
}

func newCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          kind,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(4)},
		Err:           err,
	}
}

// Message returns the single human-readable string surfaced to callers.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

// KindOf reports the ErrorKind carried by err, KindInternal otherwise.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}

// StatusCodeOf reports the HTTP status that best describes err.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.StatusCode != 0 {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
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
