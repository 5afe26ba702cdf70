package pharmacycategories

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
	pharmacyCategoryGatewayInstance contracts.PharmacyCategoryGateway
	oncePharmacyCategoryGateway     sync.Once
)

type pharmacyCategoryGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewPharmacyCategoryGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.PharmacyCategoryGateway {
	oncePharmacyCategoryGateway.Do(func() {
		pharmacyCategoryGatewayInstance = &pharmacyCategoryGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return pharmacyCategoryGatewayInstance
}

func (g *pharmacyCategoryGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("pharmacyCategoryGateway.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointPharmacyCategories,
		Query:     gateway.PageQuery(page),
		Resource:  constvars.ResourcePharmacyCategories,
		Operation: "List",
	})
	if err != nil {
		g.Log.Error("pharmacyCategoryGateway.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("pharmacyCategoryGateway.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}
