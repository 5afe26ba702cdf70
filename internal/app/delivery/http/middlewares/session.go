package middlewares

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Session reads the access token and language cookies once per request and
// stores the resulting SessionContext in the request context. Missing
// cookies produce an anonymous session; the backend decides what it may see.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := models.SessionContext{
			AccessToken: cookieValue(r, constvars.CookieAccessToken),
			Locale:      utils.CanonicalLocale(cookieValue(r, constvars.CookieLanguage)),
		}
		session.UserID = utils.ParseUnverifiedSubject(session.AccessToken)

		if !session.HasAccessToken() {
			m.Log.Debug("Anonymous session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
