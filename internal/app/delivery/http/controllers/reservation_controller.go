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

type ReservationController struct {
	Log                *zap.Logger
	ReservationGateway contracts.ReservationGateway
}

func NewReservationController(logger *zap.Logger, reservationGateway contracts.ReservationGateway) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationGateway: reservationGateway,
	}
}

func (ctrl *ReservationController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	envelope, err := ctrl.ReservationGateway.List(ctx, utils.GetSession(ctx), utils.BuildPageRequest(r))
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, envelope.Body)
}

func (ctrl *ReservationController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	reservationID := chi.URLParam(r, constvars.URLParamID)
	if err := utils.ValidateUrlParam(reservationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	envelope, err := ctrl.ReservationGateway.FindByID(ctx, utils.GetSession(ctx), reservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReservationSuccessMessage, envelope.Data())
}

// AcceptCancelRequest takes the reservation id from the path. The body is
// optional and may only carry a reason.
func (ctrl *ReservationController) AcceptCancelRequest(w http.ResponseWriter, r *http.Request) {
	ctx := gatewayContext(r)

	request := new(requests.AcceptCancelRequest)
	if r.ContentLength != 0 {
		if err := utils.ParseJSONBody(r, request); err != nil {
			utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}
	request.ID = chi.URLParam(r, constvars.URLParamID)

	utils.SanitizeAcceptCancelRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	mutation, err := ctrl.ReservationGateway.AcceptCancelRequest(ctx, utils.GetSession(ctx), request)
	if err != nil {
		utils.BuildGatewayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AcceptCancelRequestSuccessMessage, mutation.Data)
}
