package contracts

import (
	"context"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/dto/responses"
)

type StatisticsUsecase interface {
	SchoolStats(ctx context.Context, session models.SessionContext) ([]responses.SchoolStats, error)
	ExportReport(ctx context.Context, session models.SessionContext) (*responses.ReportExport, error)
}
