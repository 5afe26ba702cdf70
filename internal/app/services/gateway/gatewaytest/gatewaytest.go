// Package gatewaytest provides a recording fake backend and a mock view
// invalidator for gateway tests.
package gatewaytest

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Session is a fully populated session used by most tests.
var Session = models.SessionContext{AccessToken: "token-123", Locale: "ar"}

type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type Backend struct {
	Server   *httptest.Server
	mu       sync.Mutex
	requests []RecordedRequest
}

// NewBackend answers every request with status and body.
func NewBackend(t *testing.T, status int, body string) *Backend {
	return NewBackendFunc(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func NewBackendFunc(t *testing.T, handler http.HandlerFunc) *Backend {
	backend := &Backend{}
	backend.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		backend.mu.Lock()
		backend.requests = append(backend.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		backend.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(backend.Server.Close)
	return backend
}

func (b *Backend) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *Backend) Last() RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}
	}
	return b.requests[len(b.requests)-1]
}

func (b *Backend) URL() string {
	return b.Server.URL
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, resources models.InvalidationSet) error {
	args := m.Called(ctx, resources)
	return args.Error(0)
}

// NewClient points a gateway client at backend. invalidator may be nil.
func NewClient(backend *Backend, invalidator contracts.ViewInvalidator) *gateway.Client {
	return gateway.NewClient(backend.URL(), zap.NewNop(), invalidator)
}
