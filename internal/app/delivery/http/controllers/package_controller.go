package controllers

import (
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PackageController struct {
	Log            *zap.Logger
	PackageGateway contracts.PackageGateway
}

func NewPackageController(logger *zap.Logger, packageGateway contracts.PackageGateway) *PackageController {
	return &PackageController{
		Log:            logger,
		PackageGateway: packageGateway,
	}
}

func (ctrl *PackageController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	request := new(requests.CreatePackage)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePackage(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	mutation, err := ctrl.PackageGateway.Create(ctx, utils.GetSession(ctx), request)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePackageSuccessMessage, mutation.Data)
}
