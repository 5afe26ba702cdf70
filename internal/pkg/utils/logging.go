package utils

import (
	"context"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// ErrorFields describes err for structured logs.
func ErrorFields(err error) []zap.Field {
	return []zap.Field{
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		zap.Int(constvars.LoggingStatusCodeKey, exceptions.StatusCodeOf(err)),
		zap.String(constvars.LoggingErrorMessageKey, exceptions.Message(err)),
		zap.Error(err),
	}
}
