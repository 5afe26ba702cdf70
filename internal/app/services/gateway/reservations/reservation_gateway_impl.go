package reservations

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
	reservationGatewayInstance contracts.ReservationGateway
	onceReservationGateway     sync.Once
)

// Reservations are searched by the patient's or the doctor's phone number.
var searchFields = []string{"user.phone", "doctor.user.phone"}

type reservationGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewReservationGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.ReservationGateway {
	onceReservationGateway.Do(func() {
		reservationGatewayInstance = &reservationGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return reservationGatewayInstance
}

func (g *reservationGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("reservationGateway.List called",
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
		Path:      constvars.EndpointReservations,
		Query:     query,
		Resource:  constvars.ResourceReservations,
		Operation: "List",
	})
	if err != nil {
		g.Log.Error("reservationGateway.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("reservationGateway.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}

func (g *reservationGateway) FindByID(ctx context.Context, session models.SessionContext, reservationID string) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("reservationGateway.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, reservationID),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      gateway.EntityPath(constvars.EndpointReservations, reservationID),
		Resource:  constvars.ResourceReservations,
		Operation: "FindByID",
	})
	if err != nil {
		g.Log.Error("reservationGateway.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, reservationID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("reservationGateway.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, reservationID),
	)
	return envelope, nil
}

func (g *reservationGateway) AcceptCancelRequest(ctx context.Context, session models.SessionContext, request *requests.AcceptCancelRequest) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("reservationGateway.AcceptCancelRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.ID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.EndpointReservationsCancelRequest,
		JSONBody:  request,
		Resource:  constvars.ResourceReservations,
		Operation: "AcceptCancelRequest",
	}, models.InvalidationSet{models.ReservationResource(request.ID)})
	if err != nil {
		g.Log.Error("reservationGateway.AcceptCancelRequest error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, request.ID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("reservationGateway.AcceptCancelRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.ID),
	)
	return mutation, nil
}
