package doctors

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway/gatewaytest"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(backend *gatewaytest.Backend, invalidator *gatewaytest.MockInvalidator) *doctorGateway {
	client := gatewaytest.NewClient(backend, nil)
	client.Invalidator = invalidator
	return &doctorGateway{Client: client, Log: zap.NewNop()}
}

func TestDoctorGateway_UpdateAdditionalInfo(t *testing.T) {
	t.Run("Cleared Clinic Is Sent As Null", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":{"id":"D1"}}`)
		invalidator := new(gatewaytest.MockInvalidator)
		invalidator.On("Invalidate", mock.Anything, models.InvalidationSet{models.DoctorResource("D1")}).Return(nil).Once()
		g := newTestGateway(backend, invalidator)

		info := &requests.DoctorAdditionalInfo{
			Summary:      "Pediatrics",
			Availability: []requests.Availability{{Day: 1, IsActive: true, From: "09:00", To: "17:00"}},
		}
		_, err := g.UpdateAdditionalInfo(context.Background(), gatewaytest.Session, "D1", info)

		require.NoError(t, err)
		recorded := backend.Last()
		assert.Equal(t, http.MethodPut, recorded.Method)
		assert.Equal(t, "/doctors/D1/additional-info", recorded.Path)
		assert.Contains(t, string(recorded.Body), `"clinic":null`)
		assert.Contains(t, string(recorded.Body), `"avaliablity":[{"day":1`)
		invalidator.AssertExpectations(t)
	})

	t.Run("Invalidator Failure Does Not Fail The Write", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":{"id":"D1"}}`)
		invalidator := new(gatewaytest.MockInvalidator)
		invalidator.On("Invalidate", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
		g := newTestGateway(backend, invalidator)

		mutation, err := g.UpdateAdditionalInfo(context.Background(), gatewaytest.Session, "D1", &requests.DoctorAdditionalInfo{})

		require.NoError(t, err)
		assert.NotNil(t, mutation)
	})
}

func TestDoctorGateway_RemoveLicense(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"message":"deleted"}`)
		invalidator := new(gatewaytest.MockInvalidator)
		invalidator.On("Invalidate", mock.Anything, models.InvalidationSet{models.DoctorResource("D1")}).Return(nil).Once()
		g := newTestGateway(backend, invalidator)

		_, err := g.RemoveLicense(context.Background(), gatewaytest.Session, "D1", "L7")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, backend.Last().Method)
		assert.Equal(t, "/doctors/D1/licenses/L7", backend.Last().Path)
		invalidator.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusNotFound, `{"error":"license not found"}`)
		invalidator := new(gatewaytest.MockInvalidator)
		g := newTestGateway(backend, invalidator)

		mutation, err := g.RemoveLicense(context.Background(), gatewaytest.Session, "D1", "L404")

		assert.Nil(t, mutation)
		assert.Equal(t, "license not found", exceptions.Message(err))
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
		invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
