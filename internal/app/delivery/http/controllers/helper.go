package controllers

import (
	"context"
	"dashboard-service/internal/app/config"
	"net/http"
)

// gatewayContext keeps request-scoped values but drops cancellation so a
// dashboard tab closing mid-request does not abort an in-flight backend
// write.
func gatewayContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func multipartMemory(internalConfig *config.InternalConfig) int64 {
	return int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
}
