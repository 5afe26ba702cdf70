package middlewares

import (
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/contracts"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *config.InternalConfig
	ViewCache      contracts.ViewCache
}

func NewMiddlewares(logger *zap.Logger, accessLog *logrus.Logger, internalConfig *config.InternalConfig, viewCache contracts.ViewCache) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AccessLog:      accessLog,
		InternalConfig: internalConfig,
		ViewCache:      viewCache,
	}
}
