package contracts

import (
	"context"
	"pacientes-service/internal/app/models"
)

type RecordsBackendClient interface {
	PrescriptionsByDNI(ctx context.Context, dni string) ([]models.Prescription, error)
	StudiesByDNI(ctx context.Context, dni string) ([]models.Prescription, error)
	CertificatesByDNI(ctx context.Context, dni string) ([]models.Prescription, error)
}

type RecordsUsecase interface {
	Prescriptions(ctx context.Context, dni string) ([]models.Prescription, error)
	Studies(ctx context.Context, dni string) ([]models.Prescription, error)
	Certificates(ctx context.Context, dni string) ([]models.Prescription, error)
}
