// Package invalidationqueue fans purged view routes out on a RabbitMQ
// exchange so other renderers can drop their copies.
package invalidationqueue

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp.Channel the service publishes through.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Service struct {
	ch       channel
	log      *zap.Logger
	exchange string
	mu       sync.Mutex
}

// NewService opens a channel on conn and declares a durable fanout exchange.
func NewService(conn *amqp.Connection, log *zap.Logger, exchange string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeFanout,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return newService(ch, log, exchange), nil
}

func newService(ch channel, log *zap.Logger, exchange string) *Service {
	return &Service{
		ch:       ch,
		log:      log,
		exchange: exchange,
	}
}

var _ contracts.InvalidationPublisher = (*Service)(nil)

// Publish does not wait for broker confirms; a lost announcement only delays
// other renderers until their own TTL expires.
func (s *Service) Publish(ctx context.Context, event *models.InvalidationEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("InvalidationQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExchangeKey, s.exchange),
		zap.Strings(constvars.LoggingRoutesKey, event.Routes),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		CorrelationId: event.RequestID,
		Timestamp:     event.IssuedAt,
		Body:          body,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ch.PublishWithContext(ctx, s.exchange, "", false, false, msg); err != nil {
		s.log.Error("InvalidationQueue.Publish error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingExchangeKey, s.exchange),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.exchange)
	}

	s.log.Info("InvalidationQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExchangeKey, s.exchange),
	)
	return nil
}
