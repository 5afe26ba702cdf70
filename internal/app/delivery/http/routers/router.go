package routers

import (
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/delivery/http/controllers"
	"dashboard-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Reservation      *controllers.ReservationController
	Suggestion       *controllers.SuggestionController
	User             *controllers.UserController
	PharmacyOrder    *controllers.PharmacyOrderController
	PharmacyCategory *controllers.PharmacyCategoryController
	Pharmacy         *controllers.PharmacyController
	Doctor           *controllers.DoctorController
	Package          *controllers.PackageController
	Statistics       *controllers.StatisticsController
	Auth             *controllers.AuthController
	Health           *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Cache", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.Session)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", ctrls.Health.HealthCheck)

			r.Route("/reservations", func(r chi.Router) {
				attachReservationRoutes(r, middlewares, ctrls.Reservation)
			})

			r.Route("/suggestions", func(r chi.Router) {
				attachSuggestionRoutes(r, ctrls.Suggestion)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, ctrls.User)
			})
			r.Get("/cities", ctrls.User.ListCities)

			r.Route("/pharmacy-orders", func(r chi.Router) {
				attachPharmacyOrderRoutes(r, ctrls.PharmacyOrder)
			})
			r.Get("/pharmacy-categories", ctrls.PharmacyCategory.FindAll)

			r.Route("/pharmacies", func(r chi.Router) {
				attachPharmacyRoutes(r, ctrls.Pharmacy)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, ctrls.Doctor)
			})

			r.Post("/packages", ctrls.Package.Create)

			r.Route("/statistics", func(r chi.Router) {
				attachStatisticsRoutes(r, ctrls.Statistics)
			})

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, ctrls.Auth)
			})
		})
	})
}
