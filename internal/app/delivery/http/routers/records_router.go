package routers

import (
	"fmt"

	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRecordsRoutes(router chi.Router, recordsController *controllers.RecordsController) {
	router.Get(fmt.Sprintf("/prescriptions/{%s}", constvars.URLParamDNI), recordsController.GetPrescriptions)
	router.Get(fmt.Sprintf("/studies/{%s}", constvars.URLParamDNI), recordsController.GetStudies)
	router.Get(fmt.Sprintf("/certificates/{%s}", constvars.URLParamDNI), recordsController.GetCertificates)
}
