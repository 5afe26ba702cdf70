package users

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
	userGatewayInstance contracts.UserGateway
	onceUserGateway     sync.Once
)

type userGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewUserGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.UserGateway {
	onceUserGateway.Do(func() {
		userGatewayInstance = &userGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return userGatewayInstance
}

func (g *userGateway) ListSchools(ctx context.Context, session models.SessionContext) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.ListSchools called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointUsersSchools,
		Resource:  constvars.ResourceUsers,
		Operation: "ListSchools",
	})
	if err != nil {
		g.Log.Error("userGateway.ListSchools error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.ListSchools succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}

func (g *userGateway) FindByID(ctx context.Context, session models.SessionContext, userID string) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      gateway.EntityPath(constvars.EndpointUsers, userID),
		Resource:  constvars.ResourceUsers,
		Operation: "FindByID",
	})
	if err != nil {
		g.Log.Error("userGateway.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
	)
	return envelope, nil
}

func (g *userGateway) RegisterSchool(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.RegisterSchool called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.EndpointUsersRegisterSchool,
		Multipart: form,
		Resource:  constvars.ResourceUsers,
		Operation: "RegisterSchool",
	}, models.InvalidationSet{models.UserRoleResource(constvars.UserRoleSchools)})
	if err != nil {
		g.Log.Error("userGateway.RegisterSchool error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.RegisterSchool succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}

// Update always refreshes the user's own view and also the role's listing
// when the caller knows the role.
func (g *userGateway) Update(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload, role, userID string) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	invalidate := models.InvalidationSet{models.UserResource(userID)}
	if role != "" {
		invalidate = append(invalidate, models.UserRoleResource(role))
	}

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPut,
		Path:      constvars.EndpointUsers,
		Query:     idQuery(userID),
		Multipart: form,
		Resource:  constvars.ResourceUsers,
		Operation: "Update",
	}, invalidate)
	if err != nil {
		g.Log.Error("userGateway.Update error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
	)
	return mutation, nil
}

// UpdateAdminProfile updates the signed-in admin. The mutation data is the
// backend's `data` member, the updated profile.
func (g *userGateway) UpdateAdminProfile(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.UpdateAdminProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	invalidate := models.InvalidationSet{models.ProfileResource()}
	if session.UserID != "" {
		invalidate = append(invalidate, models.UserResource(session.UserID))
	}

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPut,
		Path:      constvars.EndpointUsers,
		Multipart: form,
		Resource:  constvars.ResourceUsers,
		Operation: "UpdateAdminProfile",
	}, invalidate)
	if err != nil {
		g.Log.Error("userGateway.UpdateAdminProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.UpdateAdminProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}

// Remove deletes a user and refreshes the user's own view, the admins
// listing and extra, the view the deletion was triggered from, when given.
func (g *userGateway) Remove(ctx context.Context, session models.SessionContext, userID string, extra *models.InvalidationResource) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("userGateway.Remove called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
	)

	invalidate := models.InvalidationSet{
		models.UserResource(userID),
		models.UserRoleResource(constvars.UserRoleAdmins),
	}
	if extra != nil {
		invalidate = append(invalidate, *extra)
	}

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodDelete,
		Path:      constvars.EndpointUsers,
		Query:     idQuery(userID),
		Resource:  constvars.ResourceUsers,
		Operation: "Remove",
	}, invalidate)
	if err != nil {
		g.Log.Error("userGateway.Remove error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.Remove succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, userID),
	)
	return mutation, nil
}

func (g *userGateway) ListCities(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("userGateway.ListCities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
	)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointCities,
		Query:     gateway.PageQuery(page),
		Resource:  constvars.ResourceCities,
		Operation: "ListCities",
	})
	if err != nil {
		g.Log.Error("userGateway.ListCities error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("userGateway.ListCities succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}

func idQuery(id string) url.Values {
	query := url.Values{}
	query.Set(constvars.QueryParamID, id)
	return query
}
