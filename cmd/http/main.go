package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/app/delivery/http/middlewares"
	"pacientes-service/internal/app/delivery/http/routers"
	"pacientes-service/internal/app/drivers/database"
	"pacientes-service/internal/app/drivers/logger"
	"pacientes-service/internal/app/services/backend"
	"pacientes-service/internal/app/services/identity"
	"pacientes-service/internal/app/services/insurances"
	"pacientes-service/internal/app/services/medications"
	"pacientes-service/internal/app/services/records"
	"pacientes-service/internal/app/services/session"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	var redisClient *redis.Client
	if internalConfig.Session.StoreBackend == constvars.SessionStoreRedis {
		redisClient = database.NewRedisClient(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Bridge listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Session store, per deployment: sealed files on a device, Redis on a
	// shared kiosk.
	store := selectSessionStore(bootstrap)

	sessionRepository := session.NewSessionRepository(store, bootstrap.Logger)
	sessionManager := session.NewSessionManager(sessionRepository, bootstrap.InternalConfig.Session.DefaultTheme, bootstrap.Logger)
	sessionManager.Start(context.Background())

	// Backend clients
	patientClient := backend.NewPatientBackendClient(bootstrap.InternalConfig, bootstrap.Logger)
	recordsClient := backend.NewRecordsBackendClient(bootstrap.InternalConfig, bootstrap.Logger)
	medicationClient := backend.NewMedicationBackendClient(bootstrap.InternalConfig, bootstrap.Logger)
	insuranceClient := backend.NewInsuranceBackendClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Usecases
	identityUsecase := identity.NewIdentityUsecase(patientClient, sessionManager, bootstrap.Logger)
	recordsUsecase := records.NewRecordsUsecase(recordsClient, bootstrap.Logger)
	medicationUsecase := medications.NewMedicationUsecase(
		medicationClient,
		bootstrap.InternalConfig.App.MedicationSearchPerSecond,
		bootstrap.InternalConfig.App.MedicationSearchBurst,
		bootstrap.Logger,
	)
	insuranceUsecase := insurances.NewInsuranceUsecase(insuranceClient, bootstrap.Logger)

	// Controllers
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionManager)
	identityController := controllers.NewIdentityController(bootstrap.Logger, identityUsecase)
	recordsController := controllers.NewRecordsController(bootstrap.Logger, recordsUsecase)
	lookupController := controllers.NewLookupController(bootstrap.Logger, medicationUsecase, insuranceUsecase)

	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		sessionController,
		identityController,
		recordsController,
		lookupController,
	)
}

func selectSessionStore(bootstrap config.Bootstrap) contracts.SessionStore {
	if bootstrap.InternalConfig.Session.StoreBackend == constvars.SessionStoreRedis {
		return session.NewRedisStore(bootstrap.Redis)
	}
	store, err := session.NewFileStore(
		bootstrap.DriverConfig.Storage.Dir,
		bootstrap.DriverConfig.Storage.SealKey,
		bootstrap.Logger,
	)
	if err != nil {
		stdlog.Fatalf("Could not initialize session store: %v", err)
	}
	return store
}
