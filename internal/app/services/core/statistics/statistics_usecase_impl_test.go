package statistics

import (
	"context"
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserGateway struct {
	mock.Mock
}

func (m *mockUserGateway) ListSchools(ctx context.Context, session models.SessionContext) (*responses.Envelope, error) {
	args := m.Called(ctx, session)
	envelope, _ := args.Get(0).(*responses.Envelope)
	return envelope, args.Error(1)
}

func (m *mockUserGateway) FindByID(ctx context.Context, session models.SessionContext, userID string) (*responses.Envelope, error) {
	panic("unexpected call")
}

func (m *mockUserGateway) RegisterSchool(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	panic("unexpected call")
}

func (m *mockUserGateway) Update(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload, role, userID string) (*responses.Mutation, error) {
	panic("unexpected call")
}

func (m *mockUserGateway) UpdateAdminProfile(ctx context.Context, session models.SessionContext, form *requests.MultipartPayload) (*responses.Mutation, error) {
	panic("unexpected call")
}

func (m *mockUserGateway) Remove(ctx context.Context, session models.SessionContext, userID string, extra *models.InvalidationResource) (*responses.Mutation, error) {
	panic("unexpected call")
}

func (m *mockUserGateway) ListCities(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	panic("unexpected call")
}

type mockAttendanceGateway struct {
	mock.Mock
}

func (m *mockAttendanceGateway) List(ctx context.Context, session models.SessionContext, page requests.PageRequest) (*responses.Envelope, error) {
	args := m.Called(ctx, session, page)
	envelope, _ := args.Get(0).(*responses.Envelope)
	return envelope, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, content []byte, bucketName, objectName, contentType string) (string, error) {
	args := m.Called(ctx, content, bucketName, objectName, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func freeLocker() *mockLocker {
	locker := new(mockLocker)
	locker.On("TryLock", mock.Anything, constvars.ReportExportLockKey, 90*time.Second).Return(true, "owner-1", nil).Maybe()
	locker.On("Unlock", mock.Anything, constvars.ReportExportLockKey, "owner-1").Return(nil).Maybe()
	return locker
}

var session = models.SessionContext{AccessToken: "token-123", Locale: "en"}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.App.StatisticsAttendanceLimit = 500
	cfg.App.StatisticsAttendanceMaxPages = 3
	cfg.App.Timezone = "UTC"
	cfg.App.ReportLockTTLInSeconds = 90
	cfg.Minio.ReportBucketName = "reports"
	cfg.Minio.MinioPreSignedUrlObjectExpiryTimeInHours = 2
	return cfg
}

func envelope(body string) *responses.Envelope {
	return &responses.Envelope{StatusCode: 200, Body: []byte(body)}
}

func newTestUsecase(users *mockUserGateway, attendance *mockAttendanceGateway, storage *mockStorage) *statisticsUsecase {
	return &statisticsUsecase{
		UserGateway:       users,
		AttendanceGateway: attendance,
		Storage:           storage,
		Locker:            freeLocker(),
		InternalConfig:    testConfig(),
		Log:               zap.NewNop(),
		now:               func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) },
	}
}

func TestStatisticsUsecase_SchoolStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		users.On("ListSchools", mock.Anything, session).
			Return(envelope(`{"data":[{"id":"S1","name":"Al Noor","school":{"students_count":30}}]}`), nil)
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 1, Limit: 500}).
			Return(envelope(`{"data":[{"id":"A1","status":"PENDING","school_id":"S1"},{"id":"A2","status":"COMPLETED","school":{"id":"S1"}}]}`), nil)

		stats, err := newTestUsecase(users, attendance, nil).SchoolStats(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, []responses.SchoolStats{
			{SchoolID: "S1", SchoolName: "Al Noor", Pending: 1, Completed: 1, TotalStudents: 30},
		}, stats)
		users.AssertExpectations(t)
		attendance.AssertExpectations(t)
	})

	t.Run("Reads Every Attendance Page", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		users.On("ListSchools", mock.Anything, session).
			Return(envelope(`{"data":[{"id":"S1","name":"Al Noor"}]}`), nil)
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 1, Limit: 2}).
			Return(envelope(`{"data":[{"status":"PENDING","school_id":"S1"},{"status":"PENDING","school_id":"S1"}]}`), nil).Once()
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 2, Limit: 2}).
			Return(envelope(`{"data":[{"status":"CONFIRMED","school_id":"S1"},{"status":"COMPLETED","school_id":"S1"}]}`), nil).Once()
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 3, Limit: 2}).
			Return(envelope(`{"data":[{"status":"COMPLETED","school_id":"S1"}]}`), nil).Once()

		uc := newTestUsecase(users, attendance, nil)
		uc.InternalConfig.App.StatisticsAttendanceLimit = 2
		stats, err := uc.SchoolStats(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, []responses.SchoolStats{
			{SchoolID: "S1", SchoolName: "Al Noor", Pending: 2, Confirmed: 1, Completed: 2},
		}, stats)
		attendance.AssertExpectations(t)
	})

	t.Run("Stops At Reported Total Pages", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		users.On("ListSchools", mock.Anything, session).
			Return(envelope(`{"data":[{"id":"S1","name":"Al Noor"}]}`), nil)
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 1, Limit: 2}).
			Return(envelope(`{"data":[{"status":"PENDING","school_id":"S1"},{"status":"PENDING","school_id":"S1"}],"pagination":{"totalPages":2}}`), nil).Once()
		attendance.On("List", mock.Anything, session, requests.PageRequest{Page: 2, Limit: 2}).
			Return(envelope(`{"data":[{"status":"CONFIRMED","school_id":"S1"},{"status":"CONFIRMED","school_id":"S1"}],"pagination":{"totalPages":2}}`), nil).Once()

		uc := newTestUsecase(users, attendance, nil)
		uc.InternalConfig.App.StatisticsAttendanceLimit = 2
		stats, err := uc.SchoolStats(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, 2, stats[0].Pending)
		assert.Equal(t, 2, stats[0].Confirmed)
		attendance.AssertExpectations(t)
	})

	t.Run("Too Many Pages Fails Instead Of Undercounting", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		users.On("ListSchools", mock.Anything, session).
			Return(envelope(`{"data":[{"id":"S1","name":"Al Noor"}]}`), nil)
		attendance.On("List", mock.Anything, session, mock.Anything).
			Return(envelope(`{"data":[{"status":"PENDING","school_id":"S1"}]}`), nil)

		uc := newTestUsecase(users, attendance, nil)
		uc.InternalConfig.App.StatisticsAttendanceLimit = 1
		stats, err := uc.SchoolStats(context.Background(), session)

		assert.Nil(t, stats)
		assert.Equal(t, 422, exceptions.StatusCodeOf(err))
		attendance.AssertNumberOfCalls(t, "List", 3)
	})

	t.Run("Schools Failure Skips Attendance", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		backendErr := exceptions.ErrBackendResponse(401, "Unauthorized", "users")
		users.On("ListSchools", mock.Anything, session).Return(nil, backendErr)

		stats, err := newTestUsecase(users, attendance, nil).SchoolStats(context.Background(), session)

		assert.Nil(t, stats)
		assert.Equal(t, "Unauthorized", exceptions.Message(err))
		attendance.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed Attendance", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		users.On("ListSchools", mock.Anything, session).Return(envelope(`{"data":[]}`), nil)
		attendance.On("List", mock.Anything, session, mock.Anything).Return(envelope(`{"data":"oops"}`), nil)

		_, err := newTestUsecase(users, attendance, nil).SchoolStats(context.Background(), session)

		assert.Equal(t, exceptions.KindDecode, exceptions.KindOf(err))
	})
}

func TestStatisticsUsecase_ExportReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		storage := new(mockStorage)
		users.On("ListSchools", mock.Anything, session).Return(envelope(`{"data":[{"id":"S1","name":"Al Noor"}]}`), nil)
		attendance.On("List", mock.Anything, session, mock.Anything).Return(envelope(`{"data":[]}`), nil)

		isReportName := mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "school_attendance_report_") && strings.HasSuffix(name, ".pdf")
		})
		isPDF := mock.MatchedBy(func(content []byte) bool {
			return strings.HasPrefix(string(content), "%PDF-")
		})
		storage.On("UploadObject", mock.Anything, isPDF, "reports", isReportName, "application/pdf").
			Return("school_attendance_report_1.pdf", nil).Once()
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "reports", "school_attendance_report_1.pdf", 2*time.Hour).
			Return("http://minio/reports/school_attendance_report_1.pdf?sig", nil).Once()

		export, err := newTestUsecase(users, attendance, storage).ExportReport(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, &responses.ReportExport{
			ObjectName: "school_attendance_report_1.pdf",
			URL:        "http://minio/reports/school_attendance_report_1.pdf?sig",
			Schools:    1,
		}, export)
		storage.AssertExpectations(t)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		storage := new(mockStorage)
		users.On("ListSchools", mock.Anything, session).Return(envelope(`{"data":[]}`), nil)
		attendance.On("List", mock.Anything, session, mock.Anything).Return(envelope(`{"data":[]}`), nil)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket missing")).Once()

		export, err := newTestUsecase(users, attendance, storage).ExportReport(context.Background(), session)

		assert.Nil(t, export)
		assert.EqualError(t, err, "bucket missing")
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Releases Lock After Success", func(t *testing.T) {
		users := new(mockUserGateway)
		attendance := new(mockAttendanceGateway)
		storage := new(mockStorage)
		locker := new(mockLocker)
		users.On("ListSchools", mock.Anything, session).Return(envelope(`{"data":[]}`), nil)
		attendance.On("List", mock.Anything, session, mock.Anything).Return(envelope(`{"data":[]}`), nil)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("r.pdf", nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, "r.pdf", mock.Anything).Return("http://minio/r.pdf", nil)
		locker.On("TryLock", mock.Anything, constvars.ReportExportLockKey, 90*time.Second).Return(true, "owner-7", nil).Once()
		locker.On("Unlock", mock.Anything, constvars.ReportExportLockKey, "owner-7").Return(nil).Once()

		uc := newTestUsecase(users, attendance, storage)
		uc.Locker = locker
		_, err := uc.ExportReport(context.Background(), session)

		require.NoError(t, err)
		locker.AssertExpectations(t)
	})

	t.Run("Concurrent Export Conflicts", func(t *testing.T) {
		users := new(mockUserGateway)
		locker := new(mockLocker)
		locker.On("TryLock", mock.Anything, constvars.ReportExportLockKey, mock.Anything).Return(false, "", nil).Once()

		uc := newTestUsecase(users, new(mockAttendanceGateway), new(mockStorage))
		uc.Locker = locker
		export, err := uc.ExportReport(context.Background(), session)

		assert.Nil(t, export)
		assert.Equal(t, 409, exceptions.StatusCodeOf(err))
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
		users.AssertNotCalled(t, "ListSchools", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})
}
