package contracts

import (
	"context"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
)

type PatientBackendClient interface {
	// CheckByDNI looks up an existing record by document number. The
	// scanned fragment, when present, travels in the X-DNI-Data header so
	// the backend can refresh stale fields.
	CheckByDNI(ctx context.Context, dni string, scanData *models.DNIScanData) (*responses.CheckPatient, error)
	Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
}

type IdentityUsecase interface {
	VerifyScan(ctx context.Context, payload string) (*responses.VerifyScan, error)
	Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error)
	UpdateProfile(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
}
