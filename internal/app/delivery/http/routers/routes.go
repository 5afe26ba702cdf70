package routers

import (
	"dashboard-service/internal/app/delivery/http/controllers"
	"dashboard-service/internal/app/delivery/http/middlewares"
	"dashboard-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Cached reads are keyed by the dashboard view they render, so a mutation
// invalidating that view also drops the cached read.
func reservationView(r *http.Request) string {
	return "/dashboard/reservations/" + chi.URLParam(r, constvars.URLParamID)
}

func schoolsView(r *http.Request) string {
	return "/dashboard/" + constvars.UserRoleSchools
}

// userView is keyed by the user id alone so every user mutation can purge it
// without knowing the role the view was opened from.
func userView(r *http.Request) string {
	return "/dashboard/users/" + chi.URLParam(r, constvars.URLParamID)
}

func attachReservationRoutes(r chi.Router, m *middlewares.Middlewares, ctrl *controllers.ReservationController) {
	r.Get("/", ctrl.FindAll)
	r.With(m.CacheView(reservationView)).Get("/{id}", ctrl.FindByID)
	r.Post("/{id}/accept-cancel", ctrl.AcceptCancelRequest)
}

func attachSuggestionRoutes(r chi.Router, ctrl *controllers.SuggestionController) {
	r.Get("/", ctrl.FindAll)
	r.Post("/reply", ctrl.Reply)
	r.Get("/{id}", ctrl.FindByID)
}

func attachUserRoutes(r chi.Router, m *middlewares.Middlewares, ctrl *controllers.UserController) {
	r.With(m.CacheView(schoolsView)).Get("/schools", ctrl.ListSchools)
	r.Post("/schools", ctrl.RegisterSchool)
	r.Put("/profile", ctrl.UpdateProfile)
	r.With(m.CacheView(userView)).Get("/{id}", ctrl.FindByID)
	r.Put("/{id}", ctrl.Update)
	r.Delete("/{id}", ctrl.Remove)
}

func attachPharmacyOrderRoutes(r chi.Router, ctrl *controllers.PharmacyOrderController) {
	r.Get("/", ctrl.FindAll)
	r.Get("/{id}", ctrl.FindByID)
}

func attachPharmacyRoutes(r chi.Router, ctrl *controllers.PharmacyController) {
	r.Post("/", ctrl.Create)
	r.Put("/{id}", ctrl.Update)
}

func attachDoctorRoutes(r chi.Router, ctrl *controllers.DoctorController) {
	r.Put("/{id}/additional-info", ctrl.UpdateAdditionalInfo)
	r.Delete("/{id}/licenses/{licenseID}", ctrl.RemoveLicense)
}

func attachStatisticsRoutes(r chi.Router, ctrl *controllers.StatisticsController) {
	r.Get("/schools", ctrl.SchoolStats)
	r.Post("/schools/report", ctrl.ExportReport)
}

func attachAuthRoutes(r chi.Router, ctrl *controllers.AuthController) {
	r.Post("/reset-password/{token}", ctrl.ResetPassword)
}
