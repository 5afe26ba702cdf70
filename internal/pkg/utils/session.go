package utils

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
)

// GetSession returns the session the session middleware stored in ctx, or
// an empty (anonymous) session.
func GetSession(ctx context.Context) models.SessionContext {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(models.SessionContext)
	return session
}
