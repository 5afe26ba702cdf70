package main

import (
	"context"
	"dashboard-service/internal/app/config"
	"dashboard-service/internal/app/delivery/http/controllers"
	"dashboard-service/internal/app/delivery/http/middlewares"
	"dashboard-service/internal/app/delivery/http/routers"
	"dashboard-service/internal/app/drivers/database"
	"dashboard-service/internal/app/drivers/logger"
	"dashboard-service/internal/app/drivers/messaging"
	"dashboard-service/internal/app/drivers/storage"
	"dashboard-service/internal/app/drivers/tracing"
	"dashboard-service/internal/app/services/core/statistics"
	"dashboard-service/internal/app/services/gateway"
	"dashboard-service/internal/app/services/gateway/attendance"
	authGateway "dashboard-service/internal/app/services/gateway/auth"
	"dashboard-service/internal/app/services/gateway/doctors"
	"dashboard-service/internal/app/services/gateway/packages"
	"dashboard-service/internal/app/services/gateway/pharmacies"
	"dashboard-service/internal/app/services/gateway/pharmacycategories"
	"dashboard-service/internal/app/services/gateway/pharmacyorders"
	"dashboard-service/internal/app/services/gateway/reservations"
	"dashboard-service/internal/app/services/gateway/suggestions"
	"dashboard-service/internal/app/services/gateway/users"
	"dashboard-service/internal/app/services/shared/invalidationqueue"
	"dashboard-service/internal/app/services/shared/locker"
	"dashboard-service/internal/app/services/shared/redis"
	minioStorage "dashboard-service/internal/app/services/shared/storage"
	"dashboard-service/internal/app/services/shared/viewcache"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log.Info("Starting dashboard service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := &config.Bootstrap{
		Router:          chi.NewRouter(),
		Redis:           database.NewRedisClient(driverConfig),
		Logger:          log,
		AccessLogger:    accessLog,
		RabbitMQ:        messaging.NewRabbitMQ(driverConfig),
		Minio:           storage.NewMinio(driverConfig, internalConfig),
		InternalConfig:  internalConfig,
		DriverConfig:    driverConfig,
		TracingShutdown: tracing.NewTracerProvider(context.Background(), internalConfig),
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger
	itemsPerPage := internalConfig.App.ItemsPerPage

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// View cache
	invalidationPublisher, err := invalidationqueue.NewService(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.InvalidationExchange)
	if err != nil {
		return err
	}
	viewCache := viewcache.NewViewCache(
		redisRepository,
		invalidationPublisher,
		log,
		time.Duration(internalConfig.ViewCache.TTLInSeconds)*time.Second,
		internalConfig.ViewCache.Enabled,
	)

	// Storage
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, log)

	// Gateways
	gatewayClient := gateway.NewClient(internalConfig.Backend.BaseUrl, log, viewCache)
	reservationGateway := reservations.NewReservationGateway(gatewayClient, log, itemsPerPage)
	suggestionGateway := suggestions.NewSuggestionGateway(gatewayClient, log, itemsPerPage)
	userGateway := users.NewUserGateway(gatewayClient, log, itemsPerPage)
	pharmacyOrderGateway := pharmacyorders.NewPharmacyOrderGateway(gatewayClient, log, itemsPerPage)
	pharmacyCategoryGateway := pharmacycategories.NewPharmacyCategoryGateway(gatewayClient, log, itemsPerPage)
	pharmacyGateway := pharmacies.NewPharmacyGateway(gatewayClient, log)
	doctorGateway := doctors.NewDoctorGateway(gatewayClient, log)
	packageGateway := packages.NewPackageGateway(gatewayClient, log)
	attendanceGateway := attendance.NewAttendanceGateway(gatewayClient, log, itemsPerPage)
	authenticationGateway := authGateway.NewAuthGateway(gatewayClient, log)

	// Usecases
	reportLocker := locker.NewLockService(redisRepository, log)
	statisticsUsecase := statistics.NewStatisticsUsecase(userGateway, attendanceGateway, storageService, reportLocker, internalConfig, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.AccessLogger, internalConfig, viewCache)

	// Controllers
	ctrls := &routers.Controllers{
		Reservation:      controllers.NewReservationController(log, reservationGateway),
		Suggestion:       controllers.NewSuggestionController(log, suggestionGateway),
		User:             controllers.NewUserController(log, userGateway, internalConfig),
		PharmacyOrder:    controllers.NewPharmacyOrderController(log, pharmacyOrderGateway),
		PharmacyCategory: controllers.NewPharmacyCategoryController(log, pharmacyCategoryGateway),
		Pharmacy:         controllers.NewPharmacyController(log, pharmacyGateway, internalConfig),
		Doctor:           controllers.NewDoctorController(log, doctorGateway),
		Package:          controllers.NewPackageController(log, packageGateway),
		Statistics:       controllers.NewStatisticsController(log, statisticsUsecase),
		Auth:             controllers.NewAuthController(log, authenticationGateway),
		Health:           controllers.NewHealthController(internalConfig),
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, ctrls)
	return nil
}
