package controllers

import (
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:  "ok",
		Version: ctrl.InternalConfig.App.Version,
	})
}
