package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// TracingShutdown flushes pending spans, nil when tracing is off.
	TracingShutdown func(context.Context) error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.TracingShutdown != nil {
		if err := b.TracingShutdown(ctx); err != nil {
			return err
		}
		logrus.Println("Successfully flushing traces")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing RabbitMQ")

	b.Logger.Sync()
	logrus.Println("Successfully closing Logger")

	return nil
}
