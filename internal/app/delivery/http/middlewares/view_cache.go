package middlewares

import (
	"bytes"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"net/http"
)

// ViewRoute names the dashboard view a read request renders. An empty route
// disables caching for that request.
type ViewRoute func(r *http.Request) string

type bufferedResponse struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.statusCode = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.body.Write(p)
	return b.ResponseWriter.Write(p)
}

// CacheView serves the request from the view cache when possible and stores
// successful renders. Only 200 responses are cached.
func (m *Middlewares) CacheView(route ViewRoute) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.ViewCache == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			view := models.CachedView{
				Route:   route(r),
				Session: utils.GetSession(r.Context()),
				Query:   r.URL.Query().Encode(),
			}
			if view.Route == "" {
				next.ServeHTTP(w, r)
				return
			}

			lookup := m.ViewCache.Lookup(r.Context(), view)
			if lookup.Hit {
				w.Header().Set(constvars.HeaderCacheStatus, constvars.CacheStatusHit)
				utils.BuildRawResponse(w, http.StatusOK, lookup.Body)
				return
			}

			w.Header().Set(constvars.HeaderCacheStatus, constvars.CacheStatusMiss)
			buffered := &bufferedResponse{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(buffered, r)

			if buffered.statusCode == http.StatusOK {
				m.ViewCache.Store(r.Context(), view, lookup.Generation, buffered.body.Bytes())
			}
		})
	}
}
