package pharmacies

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway/gatewaytest"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(backend *gatewaytest.Backend, invalidator *gatewaytest.MockInvalidator) *pharmacyGateway {
	client := gatewaytest.NewClient(backend, nil)
	client.Invalidator = invalidator
	return &pharmacyGateway{Client: client, Log: zap.NewNop()}
}

func TestPharmacyGateway_Create(t *testing.T) {
	backend := gatewaytest.NewBackend(t, http.StatusCreated, `{"data":{"id":"P1"}}`)
	invalidator := new(gatewaytest.MockInvalidator)
	invalidator.On("Invalidate", mock.Anything, models.InvalidationSet{models.PharmaciesResource()}).Return(nil).Once()
	g := newTestGateway(backend, invalidator)

	form := &requests.MultipartPayload{}
	form.AddField("ph_name", "Shifa")
	form.AddFile("logo", "logo.png", "image/png", []byte{0x89, 0x50})

	mutation, err := g.Create(context.Background(), gatewaytest.Session, form)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, backend.Last().Method)
	assert.Equal(t, "/user/register-pharmacy", backend.Last().Path)
	assert.JSONEq(t, `{"id":"P1"}`, string(mutation.Data))
	invalidator.AssertExpectations(t)
}

func TestPharmacyGateway_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusOK, `{"data":{"id":"P1"}}`)
		invalidator := new(gatewaytest.MockInvalidator)
		expected := models.InvalidationSet{models.PharmaciesResource(), models.PharmacyResource("P1"), models.UserResource("P1")}
		invalidator.On("Invalidate", mock.Anything, expected).Return(nil).Once()
		g := newTestGateway(backend, invalidator)

		_, err := g.Update(context.Background(), gatewaytest.Session, "P1", &requests.UpdatePharmacy{
			FirstName:    "Omar",
			LastName:     "Saleh",
			Phone:        "0501234567",
			PharmacyName: "Shifa",
		})

		require.NoError(t, err)
		recorded := backend.Last()
		assert.Equal(t, http.MethodPut, recorded.Method)
		assert.Equal(t, "/user", recorded.Path)
		assert.Equal(t, "P1", recorded.Query.Get("id"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorded.Body, &body))
		assert.Equal(t, "Shifa", body["ph_name"])
		assert.NotContains(t, body, "latitude")
		invalidator.AssertExpectations(t)
	})

	t.Run("Failure Signals Nothing", func(t *testing.T) {
		backend := gatewaytest.NewBackend(t, http.StatusUnprocessableEntity, `{"message":["phone is taken"]}`)
		invalidator := new(gatewaytest.MockInvalidator)
		g := newTestGateway(backend, invalidator)

		mutation, err := g.Update(context.Background(), gatewaytest.Session, "P1", &requests.UpdatePharmacy{})

		assert.Nil(t, mutation)
		assert.Equal(t, "phone is taken", exceptions.Message(err))
		assert.Equal(t, http.StatusUnprocessableEntity, exceptions.StatusCodeOf(err))
		invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
