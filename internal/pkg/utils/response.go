package utils

import (
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildRawResponse writes an already encoded JSON body, used to pass backend
// envelopes through unchanged.
func BuildRawResponse(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(body)
}

// BuildGatewayErrorResponse renders the failure body of list and mutation
// routes: a single "error" member and nothing else.
func BuildGatewayErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := exceptions.StatusCodeOf(err)
	logError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.GatewayError{Error: exceptions.Message(err)})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
	}
	logError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

func logError(log *zap.Logger, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error(err.Error())
		return
	}

	for _, location := range customErr.Locations {
		log.Error(customErr.DevMessage,
			zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("location", map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}),
		)
	}
}
