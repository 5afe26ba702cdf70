package middlewares

import (
	"context"
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockViewCache struct {
	mock.Mock
}

func (m *mockViewCache) Invalidate(ctx context.Context, resources models.InvalidationSet) error {
	return m.Called(ctx, resources).Error(0)
}

func (m *mockViewCache) Lookup(ctx context.Context, view models.CachedView) models.ViewLookup {
	return m.Called(ctx, view).Get(0).(models.ViewLookup)
}

func (m *mockViewCache) Store(ctx context.Context, view models.CachedView, generation string, body []byte) {
	m.Called(ctx, view, generation, body)
}

func newTestMiddlewares(viewCache *mockViewCache) *Middlewares {
	m := &Middlewares{
		Log:       zap.NewNop(),
		AccessLog: logrus.New(),
		InternalConfig: &config.InternalConfig{App: config.App{
			Timezone:                   "UTC",
			RequestBodyLimitInMegabyte: 1,
			MaxRequests:                100,
		}},
	}
	m.AccessLog.SetOutput(io.Discard)
	if viewCache != nil {
		m.ViewCache = viewCache
	}
	return m
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("From Client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-42", seen)
	})
}

func TestSession(t *testing.T) {
	m := newTestMiddlewares(nil)
	var seen models.SessionContext
	handler := m.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetSession(r.Context())
	}))

	t.Run("Cookies Present", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin-7"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		req.AddCookie(&http.Cookie{Name: "Language", Value: "AR"})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, token, seen.AccessToken)
		assert.Equal(t, "ar", seen.Locale)
		assert.Equal(t, "admin-7", seen.UserID)
	})

	t.Run("Anonymous", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, models.SessionContext{}, seen)
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares(nil)
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	body := strings.NewReader(strings.Repeat("a", (1<<20)+1))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", body))

	assert.Error(t, readErr)
}

func TestRequestLoggerAndLogging(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.RequestLogger(m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestCacheView(t *testing.T) {
	route := func(r *http.Request) string { return "/dashboard/reservations/R1" }
	session := models.SessionContext{AccessToken: "token-123", Locale: "ar"}
	view := models.CachedView{Route: "/dashboard/reservations/R1", Session: session, Query: "page=1"}

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/reservations/R1?page=1", nil)
		return req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, session))
	}

	t.Run("Hit", func(t *testing.T) {
		cache := new(mockViewCache)
		cache.On("Lookup", mock.Anything, view).Return(models.ViewLookup{Body: []byte(`{"cached":true}`), Hit: true, Generation: "gen:1"})
		m := newTestMiddlewares(cache)
		called := false
		handler := m.CacheView(route)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest())

		assert.False(t, called)
		assert.Equal(t, "HIT", rr.Header().Get(constvars.HeaderCacheStatus))
		assert.JSONEq(t, `{"cached":true}`, rr.Body.String())
	})

	t.Run("Miss Stores Success", func(t *testing.T) {
		cache := new(mockViewCache)
		cache.On("Lookup", mock.Anything, view).Return(models.ViewLookup{Generation: "gen:1"})
		cache.On("Store", mock.Anything, view, "gen:1", []byte(`{"fresh":true}`)).Return().Once()
		m := newTestMiddlewares(cache)
		handler := m.CacheView(route)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildRawResponse(w, http.StatusOK, []byte(`{"fresh":true}`))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest())

		assert.Equal(t, "MISS", rr.Header().Get(constvars.HeaderCacheStatus))
		assert.JSONEq(t, `{"fresh":true}`, rr.Body.String())
		cache.AssertExpectations(t)
	})

	t.Run("Miss Skips Failures", func(t *testing.T) {
		cache := new(mockViewCache)
		cache.On("Lookup", mock.Anything, view).Return(models.ViewLookup{Generation: "gen:1"})
		m := newTestMiddlewares(cache)
		handler := m.CacheView(route)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildRawResponse(w, http.StatusBadGateway, []byte(`{"error":"network error"}`))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), newRequest())

		cache.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
