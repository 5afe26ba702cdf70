package controllers

import (
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserGateway    contracts.UserGateway
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userGateway contracts.UserGateway, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserGateway:    userGateway,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) ListSchools(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.UserGateway.ListSchools(ctx, utils.GetSession(ctx))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}

func (ctrl *UserController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	userID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(userID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	envelope, err := ctrl.UserGateway.FindByID(ctx, utils.GetSession(ctx), userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserSuccessMessage, envelope.Data())
}

func (ctrl *UserController) RegisterSchool(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	form, err := utils.BuildMultipartPayload(r, multipartMemory(ctrl.InternalConfig))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	mutation, err := ctrl.UserGateway.RegisterSchool(ctx, utils.GetSession(ctx), form)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, mutation.Data)
}

// Update edits any dashboard user. The optional role query parameter picks
// which user list is refreshed afterwards.
func (ctrl *UserController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	userID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(userID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	role := r.URL.Query().Get(constvars.QueryParamRole)
	if role != "" && !constvars.AllowedUserRoles[role] {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInvalidUserRole(role))
		return
	}

	form, err := utils.BuildMultipartPayload(r, multipartMemory(ctrl.InternalConfig))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	mutation, err := ctrl.UserGateway.Update(ctx, utils.GetSession(ctx), form, role, userID)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, mutation.Data)
}

func (ctrl *UserController) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	userID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(userID); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	role := r.URL.Query().Get(constvars.QueryParamRole)
	if role != "" && !constvars.AllowedUserRoles[role] {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInvalidUserRole(role))
		return
	}

	// admins are always refreshed by the gateway
	var extra *models.InvalidationResource
	if role != "" && role != constvars.UserRoleAdmins {
		resource := models.UserRoleResource(role)
		extra = &resource
	}

	mutation, err := ctrl.UserGateway.Remove(ctx, utils.GetSession(ctx), userID, extra)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUserSuccessMessage, mutation.Data)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	form, err := utils.BuildMultipartPayload(r, multipartMemory(ctrl.InternalConfig))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	mutation, err := ctrl.UserGateway.UpdateAdminProfile(ctx, utils.GetSession(ctx), form)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, mutation.Data)
}

func (ctrl *UserController) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.UserGateway.ListCities(ctx, utils.GetSession(ctx), utils.BuildPageRequest(r))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}
