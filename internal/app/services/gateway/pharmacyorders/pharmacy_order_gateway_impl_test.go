package pharmacyorders

import (
	"context"
	"dashboard-service/internal/app/services/gateway/gatewaytest"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(backend *gatewaytest.Backend) *pharmacyOrderGateway {
	return &pharmacyOrderGateway{
		Client:       gatewaytest.NewClient(backend, nil),
		Log:          zap.NewNop(),
		DefaultLimit: 10,
	}
}

func TestPharmacyOrderGateway_List(t *testing.T) {
	t.Run("Search And Statuses", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":[],"total":0}`)
		g := newTestGateway(backend)

		_, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{
			Page:     2,
			Filter:   "ORD-77",
			Statuses: []string{"DELIVERED"},
		})

		require.NoError(t, err)
		query := backend.Last().Query
		assert.Equal(t, "/pharmacy-orders", backend.Last().Path)
		assert.Equal(t, []string{
			"number=ORD-77,status=DELIVERED",
			"user.phone=ORD-77,status=DELIVERED",
		}, query["filters[]"])
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "created_at=desc", query.Get("sortBy"))
	})

	t.Run("No Filter", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":[]}`)
		g := newTestGateway(backend)

		_, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{})

		require.NoError(t, err)
		assert.Empty(t, backend.Last().Query["filters[]"])
	})

	t.Run("Backend Failure", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
		g := newTestGateway(backend)

		envelope, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{})

		assert.Nil(t, envelope)
		assert.Equal(t, "Unauthorized", exceptions.Message(err))
		assert.Equal(t, exceptions.KindBackend, exceptions.KindOf(err))
	})
}

func TestPharmacyOrderGateway_FindByID(t *testing.T) {
	backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":{"id":"O1","number":"ORD-77"}}`)
	g := newTestGateway(backend)

	envelope, err := g.FindByID(context.Background(), gatewaytest.Session, "O1")

	require.NoError(t, err)
	assert.Equal(t, "/pharmacy-orders/O1", backend.Last().Path)
	assert.JSONEq(t, `{"id":"O1","number":"ORD-77"}`, string(envelope.Data()))
}
