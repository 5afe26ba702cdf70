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

type SuggestionController struct {
	Log               *zap.Logger
	SuggestionGateway contracts.SuggestionGateway
}

func NewSuggestionController(logger *zap.Logger, suggestionGateway contracts.SuggestionGateway) *SuggestionController {
	return &SuggestionController{
		Log:               logger,
		SuggestionGateway: suggestionGateway,
	}
}

func (ctrl *SuggestionController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.SuggestionGateway.List(ctx, utils.GetSession(ctx), utils.BuildPageRequest(r))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}

func (ctrl *SuggestionController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	suggestionID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(suggestionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	envelope, err := ctrl.SuggestionGateway.FindByID(ctx, utils.GetSession(ctx), suggestionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSuggestionSuccessMessage, envelope.Data())
}

func (ctrl *SuggestionController) Reply(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	request := new(requests.SuggestionReply)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSuggestionReply(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	mutation, err := ctrl.SuggestionGateway.Reply(ctx, utils.GetSession(ctx), request)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplySuggestionSuccessMessage, mutation.Data)
}
