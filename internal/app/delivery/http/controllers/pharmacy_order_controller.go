package controllers

import (
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PharmacyOrderController struct {
	Log                  *zap.Logger
	PharmacyOrderGateway contracts.PharmacyOrderGateway
}

func NewPharmacyOrderController(logger *zap.Logger, pharmacyOrderGateway contracts.PharmacyOrderGateway) *PharmacyOrderController {
	return &PharmacyOrderController{
		Log:                  logger,
		PharmacyOrderGateway: pharmacyOrderGateway,
	}
}

func (ctrl *PharmacyOrderController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.PharmacyOrderGateway.List(ctx, utils.GetSession(ctx), utils.BuildPageRequest(r))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}

func (ctrl *PharmacyOrderController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	orderID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(orderID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	envelope, err := ctrl.PharmacyOrderGateway.FindByID(ctx, utils.GetSession(ctx), orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPharmacyOrderSuccessMessage, envelope.Data())
}
