package invalidationqueue

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/exceptions"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedPublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	mu        sync.Mutex
	published []recordedPublish
	err       error
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, recordedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func testEvent() *models.InvalidationEvent {
	return &models.InvalidationEvent{
		RequestID: "req-1",
		Routes:    []string{"/dashboard/reservations/R1"},
		Resources: models.InvalidationSet{models.ReservationResource("R1")},
		IssuedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_Publish(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ch := &fakeChannel{}
		svc := newService(ch, zap.NewNop(), "dashboard.view_invalidations")

		err := svc.Publish(context.Background(), testEvent())

		require.NoError(t, err)
		require.Len(t, ch.published, 1)
		published := ch.published[0]
		assert.Equal(t, "dashboard.view_invalidations", published.exchange)
		assert.Empty(t, published.key)
		assert.Equal(t, "application/json", published.msg.ContentType)
		assert.Equal(t, "req-1", published.msg.CorrelationId)
		assert.JSONEq(t, `{
			"request_id": "req-1",
			"routes": ["/dashboard/reservations/R1"],
			"resources": [{"kind": "reservation", "id": "R1"}],
			"issued_at": "2024-05-01T10:00:00Z"
		}`, string(published.msg.Body))
	})

	t.Run("Broker Failure", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		svc := newService(ch, zap.NewNop(), "dashboard.view_invalidations")

		err := svc.Publish(context.Background(), testEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dashboard.view_invalidations")
		assert.Equal(t, 500, exceptions.StatusCodeOf(err))
	})

	t.Run("Concurrent Publishes", func(t *testing.T) {
		ch := &fakeChannel{}
		svc := newService(ch, zap.NewNop(), "x")

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = svc.Publish(context.Background(), testEvent())
			}()
		}
		wg.Wait()

		assert.Len(t, ch.published, 20)
	})
}
