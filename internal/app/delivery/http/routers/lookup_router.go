package routers

import (
	"pacientes-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachLookupRoutes(router chi.Router, lookupController *controllers.LookupController) {
	router.Get("/medications", lookupController.SearchMedications)
	router.Get("/obras-sociales", lookupController.GetObrasSociales)
}
