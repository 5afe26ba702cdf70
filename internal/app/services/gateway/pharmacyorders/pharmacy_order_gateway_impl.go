package pharmacyorders

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/filters"
	"dashboard-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	pharmacyOrderGatewayInstance contracts.PharmacyOrderGateway
	oncePharmacyOrderGateway     sync.Once
)

// Orders are searched by order number or by the customer's phone number.
var searchFields = []string{"number", "user.phone"}

type pharmacyOrderGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewPharmacyOrderGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.PharmacyOrderGateway {
	oncePharmacyOrderGateway.Do(func() {
		pharmacyOrderGatewayInstance = &pharmacyOrderGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return pharmacyOrderGatewayInstance
}

func (g *pharmacyOrderGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("pharmacyOrderGateway.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
		zap.Strings("statuses", page.Statuses),
	)

	query := gateway.PageQuery(page)
	filters.Search(page.Filter, searchFields, constvars.QueryParamStatus, page.Statuses).Apply(query)
	query.Set(constvars.QueryParamSortBy, constvars.SortByCreatedAtDesc)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointPharmacyOrders,
		Query:     query,
		Resource:  constvars.ResourcePharmacyOrders,
		Operation: "List",
	})
	if err != nil {
		g.Log.Error("pharmacyOrderGateway.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("pharmacyOrderGateway.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}

func (g *pharmacyOrderGateway) FindByID(ctx context.Context, session models.SessionContext, orderID string) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("pharmacyOrderGateway.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, orderID),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      gateway.EntityPath(constvars.EndpointPharmacyOrders, orderID),
		Resource:  constvars.ResourcePharmacyOrders,
		Operation: "FindByID",
	})
	if err != nil {
		g.Log.Error("pharmacyOrderGateway.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("pharmacyOrderGateway.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, orderID),
	)
	return envelope, nil
}
