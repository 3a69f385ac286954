package routers

import (
	"fmt"
	"time"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *controllers.SessionController,
	identityController *controllers.IdentityController,
	recordsController *controllers.RecordsController,
	lookupController *controllers.LookupController,
) {

	// The bridge only ever talks to the UI shell on the same device, so
	// origins stay open and credentials stay off.
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, sessionController)
			})

			r.Route("/identity", func(r chi.Router) {
				attachIdentityRoutes(r, identityController)
			})

			r.Route("/records", func(r chi.Router) {
				attachRecordsRoutes(r, recordsController)
			})

			r.Route("/lookup", func(r chi.Router) {
				attachLookupRoutes(r, lookupController)
			})
		})
	})
}
