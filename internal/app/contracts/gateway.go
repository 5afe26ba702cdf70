package contracts

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
)

type ReservationGateway interface {
	List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
	FindByID(ctx context.Context, session models.SessionContext, reservationID string) (*responses.Envelope, error)
	AcceptCancelRequest(ctx context.Context, session models.SessionContext, request *requests.AcceptCancelRequest) (*responses.Mutation, error)
}

type SuggestionGateway interface {
	List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
	FindByID(ctx context.Context, session models.SessionContext, suggestionID string) (*responses.Envelope, error)
	Reply(ctx context.Context, session models.SessionContext, request *requests.SuggestionReply) (*responses.Mutation, error)
}

type UserGateway interface {
	ListSchools(ctx context.Context, session models.SessionContext) (*responses.Envelope, error)
	FindByID(ctx context.Context, session models.SessionContext, userID string) (*responses.Envelope, error)
	RegisterSchool(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error)
	Update(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload, role, userID string) (*responses.Mutation, error)
	UpdateAdminProfile(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error)
	Remove(ctx context.Context, session models.SessionContext, userID string, extra *models.InvalidationResource) (*responses.Mutation, error)
	ListCities(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
}

type PharmacyOrderGateway interface {
	List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
	FindByID(ctx context.Context, session models.SessionContext, orderID string) (*responses.Envelope, error)
}

type PharmacyCategoryGateway interface {
	List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
}

type PharmacyGateway interface {
	Create(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error)
	Update(ctx context.Context, session models.SessionContext, pharmacyID string, request *requests.UpdatePharmacy) (*responses.Mutation, error)
}

type DoctorGateway interface {
	UpdateAdditionalInfo(ctx context.Context, session models.SessionContext, doctorID string, request *requests.DoctorAdditionalInfo) (*responses.Mutation, error)
	RemoveLicense(ctx context.Context, session models.SessionContext, doctorID, licenseID string) (*responses.Mutation, error)
}

type PackageGateway interface {
	Create(ctx context.Context, session models.SessionContext, request *requests.CreatePackage) (*responses.Mutation, error)
}

type AttendanceGateway interface {
	List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error)
}

type AuthGateway interface {
	ResetPassword(ctx context.Context, session models.SessionContext, token, newPassword string) (*responses.Mutation, error)
}
