package reservations

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway/gatewaytest"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(backend *gatewaytest.Backend, invalidator *gatewaytest.MockInvalidator) *reservationGateway {
	client := gatewaytest.NewClient(backend, nil)
	if invalidator != nil {
		client.Invalidator = invalidator
	}
	return &reservationGateway{Client: client, Log: zap.NewNop(), DefaultLimit: 10}
}

func TestReservationGateway_List(t *testing.T) {
	t.Run("Filter Construction", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":[],"total":0}`)
		g := newTestGateway(backend, nil)

		_, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{
			Filter:   "0501234567",
			Statuses: []string{"PENDING", "CONFIRMED"},
		})

		require.NoError(t, err)
		query := backend.Last().Query
		assert.Equal(t, []string{
			"user.phone=0501234567,status=PENDING,CONFIRMED",
			"doctor.user.phone=0501234567,status=PENDING,CONFIRMED",
		}, query["filters[]"])
		assert.Equal(t, "created_at=desc", query.Get("sortBy"))
	})

	t.Run("Pagination Defaults", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":[]}`)
		g := newTestGateway(backend, nil)

		_, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{})

		require.NoError(t, err)
		query := backend.Last().Query
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Empty(t, query["filters[]"])
	})

	t.Run("Reads Are Idempotent", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":[{"id":"R1"}]}`)
		g := newTestGateway(backend, nil)
		page := requests.PageRequest{Page: 2, Limit: 20}

		first, err := g.List(context.Background(), gatewaytest.Session, page)
		require.NoError(t, err)
		second, err := g.List(context.Background(), gatewaytest.Session, page)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, backend.Count())
	})

	t.Run("Failure Shape", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
		g := newTestGateway(backend, nil)

		envelope, err := g.List(context.Background(), gatewaytest.Session, requests.PageRequest{})

		assert.Nil(t, envelope)
		require.Error(t, err)
		assert.Equal(t, "Unauthorized", exceptions.Message(err))
	})
}

func TestReservationGateway_FindByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":{"id":"R1"}}`)
		g := newTestGateway(backend, nil)

		envelope, err := g.FindByID(context.Background(), gatewaytest.Session, "R1")

		require.NoError(t, err)
		assert.Equal(t, "/reservations/R1", backend.Last().Path)
		assert.JSONEq(t, `{"id":"R1"}`, string(envelope.Data()))
	})

	t.Run("Not Found Propagates", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusNotFound, `{"message":"Reservation not found"}`)
		g := newTestGateway(backend, nil)

		envelope, err := g.FindByID(context.Background(), gatewaytest.Session, "missing")

		assert.Nil(t, envelope)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestReservationGateway_AcceptCancelRequest(t *testing.T) {
	t.Run("Invalidates Reservation View", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusCreated, `{"data":{"id":"R1","status":"CANCELLED"}}`)
		invalidator := new(gatewaytest.MockInvalidator)
		expected := models.InvalidationSet{models.ReservationResource("R1")}
		invalidator.On("Invalidate", mock.Anything, expected).Return(nil).Once()
		g := newTestGateway(backend, invalidator)

		mutation, err := g.AcceptCancelRequest(context.Background(), gatewaytest.Session, &requests.AcceptCancelRequest{ID: "R1"})

		require.NoError(t, err)
		assert.Equal(t, expected, mutation.Invalidate)
		assert.Equal(t, "/reservations/cancel-request", backend.Last().Path)
		assert.JSONEq(t, `{"id":"R1"}`, string(backend.Last().Body))
		invalidator.AssertExpectations(t)
	})

	t.Run("Failure Signals Nothing", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusInternalServerError, ``)
		invalidator := new(gatewaytest.MockInvalidator)
		g := newTestGateway(backend, invalidator)

		mutation, err := g.AcceptCancelRequest(context.Background(), gatewaytest.Session, &requests.AcceptCancelRequest{ID: "R1"})

		assert.Nil(t, mutation)
		require.Error(t, err)
		assert.Equal(t, "request failed with status code 500", exceptions.Message(err))
		invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
