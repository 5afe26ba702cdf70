package packages

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	packageGatewayInstance contracts.PackageGateway
	oncePackageGateway     sync.Once
)

type packageGateway struct {
	Client *gateway.Client
	Log    *zap.Logger
}

func NewPackageGateway(client *gateway.Client, logger *zap.Logger) contracts.PackageGateway {
	oncePackageGateway.Do(func() {
		packageGatewayInstance = &packageGateway{
			Client: client,
			Log:    logger,
		}
	})
	return packageGatewayInstance
}

func (g *packageGateway) Create(ctx context.Context, session models.SessionContext, request *requests.CreatePackage) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("packageGateway.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("name", request.NameEn),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.EndpointPackages,
		JSONBody:  request,
		Resource:  constvars.ResourcePackages,
		Operation: "Create",
	}, models.InvalidationSet{models.PackagesResource()})
	if err != nil {
		g.Log.Error("packageGateway.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("packageGateway.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}
