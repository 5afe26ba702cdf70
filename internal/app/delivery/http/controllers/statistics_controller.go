package controllers

import (
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type StatisticsController struct {
	Log               *zap.Logger
	StatisticsUsecase contracts.StatisticsUsecase
}

func NewStatisticsController(logger *zap.Logger, statisticsUsecase contracts.StatisticsUsecase) *StatisticsController {
	return &StatisticsController{
		Log:               logger,
		StatisticsUsecase: statisticsUsecase,
	}
}

func (ctrl *StatisticsController) SchoolStats(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	stats, err := ctrl.StatisticsUsecase.SchoolStats(ctx, utils.GetSession(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchoolStatsSuccessMessage, stats)
}

func (ctrl *StatisticsController) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	export, err := ctrl.StatisticsUsecase.ExportReport(ctx, utils.GetSession(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportSchoolStatsSuccessMessage, export)
}
