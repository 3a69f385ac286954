package routers

import (
	"fmt"

	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachIdentityRoutes(router chi.Router, identityController *controllers.IdentityController) {
	router.Post("/verify-scan", identityController.VerifyScan)
	router.Post("/register", identityController.Register)
	router.Put(fmt.Sprintf("/patients/{%s}", constvars.URLParamPatientID), identityController.Update)
}
