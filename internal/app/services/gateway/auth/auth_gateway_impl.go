package auth

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/utils"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	authGatewayInstance contracts.AuthGateway
	onceAuthGateway     sync.Once
)

type authGateway struct {
	Client *gateway.Client
	Log    *zap.Logger
}

func NewAuthGateway(client *gateway.Client, logger *zap.Logger) contracts.AuthGateway {
	onceAuthGateway.Do(func() {
		authGatewayInstance = &authGateway{
			Client: client,
			Log:    logger,
		}
	})
	return authGatewayInstance
}

// ResetPassword completes a reset started from an emailed link. The token is
// never logged.
func (g *authGateway) ResetPassword(ctx context.Context, session models.SessionContext, token, newPassword string) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("authGateway.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      fmt.Sprintf(constvars.EndpointAuthResetPasswordTemplate, url.PathEscape(token)),
		JSONBody:  &requests.ResetPasswordBackend{NewPassword: newPassword},
		Resource:  constvars.ResourceAuth,
		Operation: "ResetPassword",
	}, nil)
	if err != nil {
		g.Log.Error("authGateway.ResetPassword error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("authGateway.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}
