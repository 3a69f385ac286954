package routers

import (
	"pacientes-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *controllers.SessionController) {
	router.Get("/", sessionController.GetSession)
	router.Delete("/", sessionController.ClearSession)
	router.Put("/theme", sessionController.SetTheme)
}
