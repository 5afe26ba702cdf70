package suggestions

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
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	suggestionGatewayInstance contracts.SuggestionGateway
	onceSuggestionGateway     sync.Once
)

var searchFields = []string{"user.phone", "email", "user.name"}

type suggestionGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewSuggestionGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.SuggestionGateway {
	onceSuggestionGateway.Do(func() {
		suggestionGatewayInstance = &suggestionGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return suggestionGatewayInstance
}

// List ignores status facets; suggestions are only searched by text.
func (g *suggestionGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("suggestionGateway.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
	)

	query := gateway.PageQuery(page)
	if search := strings.TrimSpace(page.Filter); search != "" {
		filters.Or(search, searchFields).Apply(query)
	}

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointSuggestions,
		Query:     query,
		Resource:  constvars.ResourceSuggestions,
		Operation: "List",
	})
	if err != nil {
		g.Log.Error("suggestionGateway.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("suggestionGateway.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}

// FindByID also returns suggestions the author has since deleted.
func (g *suggestionGateway) FindByID(ctx context.Context, session models.SessionContext, suggestionID string) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("suggestionGateway.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, suggestionID),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamIsDeleted, "true")

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      gateway.EntityPath(constvars.EndpointSuggestions, suggestionID),
		Query:     query,
		Resource:  constvars.ResourceSuggestions,
		Operation: "FindByID",
	})
	if err != nil {
		g.Log.Error("suggestionGateway.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, suggestionID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("suggestionGateway.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, suggestionID),
	)
	return envelope, nil
}

// Reply does not invalidate any view.
func (g *suggestionGateway) Reply(ctx context.Context, session models.SessionContext, request *requests.SuggestionReply) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("suggestionGateway.Reply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, request.SuggestionID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPost,
		Path:      constvars.EndpointSuggestionsReply,
		JSONBody:  request,
		Resource:  constvars.ResourceSuggestions,
		Operation: "Reply",
	}, nil)
	if err != nil {
		g.Log.Error("suggestionGateway.Reply error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("suggestionGateway.Reply succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return mutation, nil
}
