package controllers

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

func envelopeOf(args mock.Arguments) (*responses.Envelope, error) {
	envelope, _ := args.Get(0).(*responses.Envelope)
	return envelope, args.Error(1)
}

func mutationOf(args mock.Arguments) (*responses.Mutation, error) {
	mutation, _ := args.Get(0).(*responses.Mutation)
	return mutation, args.Error(1)
}

type MockReservationGateway struct {
	mock.Mock
}

func (m *MockReservationGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, page))
}

func (m *MockReservationGateway) FindByID(ctx context.Context, session models.SessionContext, reservationID string) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, reservationID))
}

func (m *MockReservationGateway) AcceptCancelRequest(ctx context.Context, session models.SessionContext, request *requests.AcceptCancelRequest) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, request))
}

type MockSuggestionGateway struct {
	mock.Mock
}

func (m *MockSuggestionGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, page))
}

func (m *MockSuggestionGateway) FindByID(ctx context.Context, session models.SessionContext, suggestionID string) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, suggestionID))
}

func (m *MockSuggestionGateway) Reply(ctx context.Context, session models.SessionContext, request *requests.SuggestionReply) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, request))
}

type MockUserGateway struct {
	mock.Mock
}

func (m *MockUserGateway) ListSchools(ctx context.Context, session models.SessionContext) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session))
}

func (m *MockUserGateway) FindByID(ctx context.Context, session models.SessionContext, userID string) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, userID))
}

func (m *MockUserGateway) RegisterSchool(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, form))
}

func (m *MockUserGateway) Update(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload, role, userID string) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, form, role, userID))
}

func (m *MockUserGateway) UpdateAdminProfile(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, form))
}

func (m *MockUserGateway) Remove(ctx context.Context, session models.SessionContext, userID string, extra *models.InvalidationResource) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, userID, extra))
}

func (m *MockUserGateway) ListCities(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	return envelopeOf(m.Called(ctx, session, page))
}

type MockPharmacyGateway struct {
	mock.Mock
}

func (m *MockPharmacyGateway) Create(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, form))
}

func (m *MockPharmacyGateway) Update(ctx context.Context, session models.SessionContext, pharmacyID string, request *requests.UpdatePharmacy) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, pharmacyID, request))
}

type MockDoctorGateway struct {
	mock.Mock
}

func (m *MockDoctorGateway) UpdateAdditionalInfo(ctx context.Context, session models.SessionContext, doctorID string, request *requests.DoctorAdditionalInfo) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, doctorID, request))
}

func (m *MockDoctorGateway) RemoveLicense(ctx context.Context, session models.SessionContext, doctorID, licenseID string) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, doctorID, licenseID))
}

type MockStatisticsUsecase struct {
	mock.Mock
}

func (m *MockStatisticsUsecase) SchoolStats(ctx context.Context, session models.SessionContext) ([]responses.SchoolStats, error) {
	args := m.Called(ctx, session)
	stats, _ := args.Get(0).([]responses.SchoolStats)
	return stats, args.Error(1)
}

func (m *MockStatisticsUsecase) ExportReport(ctx context.Context, session models.SessionContext) (*responses.ReportExport, error) {
	args := m.Called(ctx, session)
	export, _ := args.Get(0).(*responses.ReportExport)
	return export, args.Error(1)
}

type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) ResetPassword(ctx context.Context, session models.SessionContext, token, newPassword string) (*responses.Mutation, error) {
	return mutationOf(m.Called(ctx, session, token, newPassword))
}
