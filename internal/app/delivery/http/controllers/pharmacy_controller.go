package controllers

import (
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PharmacyController struct {
	Log             *zap.Logger
	PharmacyGateway contracts.PharmacyGateway
	InternalConfig  *config.InternalConfig
}

func NewPharmacyController(logger *zap.Logger, pharmacyGateway contracts.PharmacyGateway, internalConfig *config.InternalConfig) *PharmacyController {
	return &PharmacyController{
		Log:             logger,
		PharmacyGateway: pharmacyGateway,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *PharmacyController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	form, err := utils.BuildMultipartPayload(r, multipartMemory(ctrl.InternalConfig))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	mutation, err := ctrl.PharmacyGateway.Create(ctx, utils.GetSession(ctx), form)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePharmacySuccessMessage, mutation.Data)
}

func (ctrl *PharmacyController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	pharmacyID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(pharmacyID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	request := new(requests.UpdatePharmacy)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdatePharmacy(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	mutation, err := ctrl.PharmacyGateway.Update(ctx, utils.GetSession(ctx), pharmacyID, request)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePharmacySuccessMessage, mutation.Data)
}
