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

type AuthController struct {
	Log         *zap.Logger
	AuthGateway contracts.AuthGateway
}

func NewAuthController(logger *zap.Logger, authGateway contracts.AuthGateway) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthGateway: authGateway,
	}
}

// ResetPassword completes the reset link flow. The token comes from the
// emailed link and is forwarded untouched.
func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	token := chi.URLParam(r, constvars.URLParamToken)
	if err := utils.ValidateUrlParam(token); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamToken))
		return
	}

	request := new(requests.ResetPassword)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	mutation, err := ctrl.AuthGateway.ResetPassword(ctx, utils.GetSession(ctx), token, request.Password)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetPasswordSuccessMessage, mutation.Data)
}
