package viewcache

import (
	"context"
	"dashboard-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event *models.InvalidationEvent) error {
	return m.Called(ctx, event).Error(0)
}
