package controllers

import (
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorGateway contracts.DoctorGateway
}

func NewDoctorController(logger *zap.Logger, doctorGateway contracts.DoctorGateway) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorGateway: doctorGateway,
	}
}

func (ctrl *DoctorController) UpdateAdditionalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	doctorID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(doctorID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	request := new(requests.DoctorAdditionalInfo)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.ClearZeroClinicPrice()

	mutation, err := ctrl.DoctorGateway.UpdateAdditionalInfo(ctx, utils.GetSession(ctx), doctorID, request)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorInfoSuccessMessage, mutation.Data)
}

func (ctrl *DoctorController) RemoveLicense(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	doctorID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(doctorID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}
	licenseID := chi.URLParam(r, constvars.URLParamLicenseID)
	if err := utils.ValidateUrlParam(licenseID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamLicenseID))
		return
	}

	mutation, err := ctrl.DoctorGateway.RemoveLicense(ctx, utils.GetSession(ctx), doctorID, licenseID)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveDoctorLicenseSuccessMessage, mutation.Data)
}
