package controllers

import (
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PharmacyCategoryController struct {
	Log                     *zap.Logger
	PharmacyCategoryGateway contracts.PharmacyCategoryGateway
}

func NewPharmacyCategoryController(logger *zap.Logger, pharmacyCategoryGateway contracts.PharmacyCategoryGateway) *PharmacyCategoryController {
	return &PharmacyCategoryController{
		Log:                     logger,
		PharmacyCategoryGateway: pharmacyCategoryGateway,
	}
}

func (ctrl *PharmacyCategoryController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.PharmacyCategoryGateway.List(ctx, utils.GetSession(ctx), utils.BuildPageRequest(r))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}
