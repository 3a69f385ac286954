package contracts

import (
	"context"
	"pacientes-service/internal/app/models"
)

type MedicationBackendClient interface {
	Search(ctx context.Context, query string) ([]models.Medication, error)
}

type MedicationUsecase interface {
	Search(ctx context.Context, query string) ([]models.Medication, error)
}

type InsuranceBackendClient interface {
	ListObrasSociales(ctx context.Context) ([]models.ObraSocial, error)
}

type InsuranceUsecase interface {
	ListObrasSociales(ctx context.Context) ([]models.ObraSocial, error)
}
