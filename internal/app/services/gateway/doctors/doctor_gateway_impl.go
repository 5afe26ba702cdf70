package doctors

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
	doctorGatewayInstance contracts.DoctorGateway
	onceDoctorGateway     sync.Once
)

type doctorGateway struct {
	Client *gateway.Client
	Log    *zap.Logger
}

func NewDoctorGateway(client *gateway.Client, logger *zap.Logger) contracts.DoctorGateway {
	onceDoctorGateway.Do(func() {
		doctorGatewayInstance = &doctorGateway{
			Client: client,
			Log:    logger,
		}
	})
	return doctorGatewayInstance
}

func (g *doctorGateway) UpdateAdditionalInfo(ctx context.Context, session models.SessionContext, doctorID string, request *requests.DoctorAdditionalInfo) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("doctorGateway.UpdateAdditionalInfo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, doctorID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodPut,
		Path:      fmt.Sprintf(constvars.EndpointDoctorAdditionalInfo, url.PathEscape(doctorID)),
		JSONBody:  request,
		Resource:  constvars.ResourceDoctors,
		Operation: "UpdateAdditionalInfo",
	}, models.InvalidationSet{models.DoctorResource(doctorID)})
	if err != nil {
		g.Log.Error("doctorGateway.UpdateAdditionalInfo error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("doctorGateway.UpdateAdditionalInfo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, doctorID),
	)
	return mutation, nil
}

func (g *doctorGateway) RemoveLicense(ctx context.Context, session models.SessionContext, doctorID, licenseID string) (*responses.Mutation, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("doctorGateway.RemoveLicense called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, doctorID),
		zap.String("license_id", licenseID),
	)

	mutation, err := g.Client.Mutate(ctx, session, &gateway.Request{
		Method:    constvars.MethodDelete,
		Path:      fmt.Sprintf(constvars.EndpointDoctorLicense, url.PathEscape(doctorID), url.PathEscape(licenseID)),
		Resource:  constvars.ResourceDoctors,
		Operation: "RemoveLicense",
	}, models.InvalidationSet{models.DoctorResource(doctorID)})
	if err != nil {
		g.Log.Error("doctorGateway.RemoveLicense error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	g.Log.Info("doctorGateway.RemoveLicense succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, doctorID),
	)
	return mutation, nil
}
