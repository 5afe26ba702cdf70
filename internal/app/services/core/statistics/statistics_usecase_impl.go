package statistics

import (
	"context"
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type statisticsUsecase struct {
	UserGateway       contracts.UserGateway
	AttendanceGateway contracts.AttendanceGateway
	Storage           contracts.Storage
	Locker            contracts.LockerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

var (
	statisticsUsecaseInstance contracts.StatisticsUsecase
	onceStatisticsUsecase     sync.Once
)

func NewStatisticsUsecase(
	userGateway contracts.UserGateway,
	attendanceGateway contracts.AttendanceGateway,
	storage contracts.Storage,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.StatisticsUsecase {
	onceStatisticsUsecase.Do(func() {
		statisticsUsecaseInstance = &statisticsUsecase{
			UserGateway:       userGateway,
			AttendanceGateway: attendanceGateway,
			Storage:           storage,
			Locker:            locker,
			InternalConfig:    internalConfig,
			Log:               logger,
			now:               time.Now,
		}
	})
	return statisticsUsecaseInstance
}

func (uc *statisticsUsecase) SchoolStats(ctx context.Context, session models.SessionContext) ([]responses.SchoolStats, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("statisticsUsecase.SchoolStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	schoolsEnvelope, err := uc.UserGateway.ListSchools(ctx, session)
	if err != nil {
		uc.Log.Error("statisticsUsecase.SchoolStats error listing schools",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var schools []responses.School
	if err := schoolsEnvelope.DecodeData(&schools); err != nil {
		uc.Log.Error("statisticsUsecase.SchoolStats error decoding schools",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	entries, err := uc.listAttendance(ctx, session)
	if err != nil {
		uc.Log.Error("statisticsUsecase.SchoolStats error listing attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	stats := Aggregate(schools, entries)
	uc.Log.Info("statisticsUsecase.SchoolStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSchoolCountKey, len(stats)),
		zap.Int(constvars.LoggingEntryCountKey, len(entries)),
	)
	return stats, nil
}

// listAttendance reads every attendance page. It stops on an empty or short
// page, or once the reported total is reached, and fails rather than
// aggregating a partial set when MaxPages is exceeded.
func (uc *statisticsUsecase) listAttendance(ctx context.Context, session models.SessionContext) ([]responses.AttendanceEntry, error) {
	limit := uc.InternalConfig.App.StatisticsAttendanceLimit
	maxPages := uc.InternalConfig.App.StatisticsAttendanceMaxPages

	var entries []responses.AttendanceEntry
	for page := 1; ; page++ {
		if maxPages > 0 && page > maxPages {
			return nil, exceptions.ErrAttendancePageLimit(maxPages)
		}

		envelope, err := uc.AttendanceGateway.List(ctx, session, requests.PageRequest{Page: page, Limit: limit})
		if err != nil {
			return nil, err
		}

		var batch []responses.AttendanceEntry
		if err := envelope.DecodeData(&batch); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceStudentAttendance)
		}
		entries = append(entries, batch...)

		info := envelope.PageInfo()
		switch {
		case len(batch) == 0:
			return entries, nil
		case info.TotalPages > 0:
			if page >= info.TotalPages {
				return entries, nil
			}
		case info.Total > 0:
			if len(entries) >= info.Total {
				return entries, nil
			}
		case limit <= 0 || len(batch) < limit:
			return entries, nil
		}
	}
}

// ExportReport renders the school statistics as a PDF, uploads it and
// returns a presigned download link. Only one export runs at a time; a
// concurrent call fails with a conflict instead of waiting.
func (uc *statisticsUsecase) ExportReport(ctx context.Context, session models.SessionContext) (*responses.ReportExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("statisticsUsecase.ExportReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lockTTL := time.Duration(uc.InternalConfig.App.ReportLockTTLInSeconds) * time.Second
	acquired, owner, err := uc.Locker.TryLock(ctx, constvars.ReportExportLockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrReportExportInProgress()
	}
	defer func() {
		if err := uc.Locker.Unlock(ctx, constvars.ReportExportLockKey, owner); err != nil {
			uc.Log.Warn("statisticsUsecase.ExportReport failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	stats, err := uc.SchoolStats(ctx, session)
	if err != nil {
		return nil, err
	}

	generatedAt := uc.now()
	if location, err := time.LoadLocation(uc.InternalConfig.App.Timezone); err == nil {
		generatedAt = generatedAt.In(location)
	}

	content, err := RenderReport(stats, generatedAt)
	if err != nil {
		uc.Log.Error("statisticsUsecase.ExportReport error rendering report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderReport(err)
	}

	bucketName := uc.InternalConfig.Minio.ReportBucketName
	objectName := utils.GenerateFileName(constvars.ReportFileNamePrefix, "", constvars.ReportFileExtension)
	objectName, err = uc.Storage.UploadObject(ctx, content, bucketName, objectName, constvars.MIMEApplicationPDF)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	presignedURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("statisticsUsecase.ExportReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.ReportExport{
		ObjectName: objectName,
		URL:        presignedURL,
		Schools:    len(stats),
	}, nil
}
