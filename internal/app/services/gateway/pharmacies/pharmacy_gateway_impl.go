package pharmacies

import (
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/app/services/gateway"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/utils"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	pharmacyGatewayInstance contracts.PharmacyGateway
	oncePharmacyGateway     sync.Once
)

type pharmacyGateway struct {
	Client *gateway.Client
	Log    *zap.Logger
}

func NewPharmacyGateway(client *gateway.Client, logger *zap.Logger) contracts.PharmacyGateway {
	oncePharmacyGateway.Do(func() {
		pharmacyGatewayInstance = &pharmacyGateway{
			Client: client,
			Log:    logger,
		}
	})
	return pharmacyGatewayInstance
}

func (g *pharmacyGateway) Create(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("pharmacyGateway.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.EndpointUsersRegisterPharmacy,
		Multipart: form,
		Resource:  constvars.ResourcePharmacies,
		Operation: "Create",
	}, models.InvalidationSet{models.PharmaciesResource()})
	if err != nil {
		g.Log.Error("pharmacyGateway.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("pharmacyGateway.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}

// Update edits the pharmacy owner account, which the backend keys by user id.
func (g *pharmacyGateway) Update(ctx context.Context, session models.SessionContext, pharmacyID string, request *requests.UpdatePharmacy) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("pharmacyGateway.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, pharmacyID),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamID, pharmacyID)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPut,
		Path:      constvars.EndpointUsers,
		Query:     query,
		JSONBody:  request,
		Resource:  constvars.ResourcePharmacies,
		Operation: "Update",
	}, models.InvalidationSet{
		models.PharmaciesResource(),
		models.PharmacyResource(pharmacyID),
		models.UserResource(pharmacyID),
	})
	if err != nil {
		g.Log.Error("pharmacyGateway.Update error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, pharmacyID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("pharmacyGateway.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, pharmacyID),
	)
	return mutation, nil
}
