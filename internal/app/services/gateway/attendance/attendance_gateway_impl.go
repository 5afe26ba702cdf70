package attendance

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
	attendanceGatewayInstance contracts.AttendanceGateway
	onceAttendanceGateway     sync.Once
)

// The attendance filter value is a school id.
var searchFields = []string{"school.id"}

type attendanceGateway struct {
	Client       *gateway.Client
	Log          *zap.Logger
	DefaultLimit int
}

func NewAttendanceGateway(client *gateway.Client, logger *zap.Logger, defaultLimit int) contracts.AttendanceGateway {
	onceAttendanceGateway.Do(func() {
		attendanceGatewayInstance = &attendanceGateway{
			Client:       client,
			Log:          logger,
			DefaultLimit: defaultLimit,
		}
	})
	return attendanceGatewayInstance
}

func (g *attendanceGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	page = page.Normalize(g.DefaultLimit)
	g.Log.Info("attendanceGateway.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page.Page),
		zap.Int("limit", page.Limit),
		zap.String("school_id", page.Filter),
	)

	query := gateway.PageQuery(page)
	filters.Search(page.Filter, searchFields, constvars.QueryParamStatus, page.Statuses).Apply(query)

	envelope, err := g.Client.Do(ctx, session, &gateway.Request{
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointStudentAttendance,
		Query:     query,
		Resource:  constvars.ResourceStudentAttendance,
		Operation: "List",
	})
	if err != nil {
		g.Log.Error("attendanceGateway.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("attendanceGateway.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return envelope, nil
}
