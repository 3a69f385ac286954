// Package records serves the read-only clinical documents: recetas,
// estudios and certificados issued by council practitioners.
package records

import (
	"context"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type recordsUsecase struct {
	RecordsClient contracts.RecordsBackendClient
	Log           *zap.Logger
}

func NewRecordsUsecase(recordsClient contracts.RecordsBackendClient, logger *zap.Logger) contracts.RecordsUsecase {
	return &recordsUsecase{
		RecordsClient: recordsClient,
		Log:           logger,
	}
}

func (uc *recordsUsecase) Prescriptions(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordsUsecase.Prescriptions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	prescriptions, err := uc.RecordsClient.PrescriptionsByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(prescriptions), nil
}

func (uc *recordsUsecase) Studies(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordsUsecase.Studies",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	studies, err := uc.RecordsClient.StudiesByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(studies), nil
}

func (uc *recordsUsecase) Certificates(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordsUsecase.Certificates",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	certificates, err := uc.RecordsClient.CertificatesByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	return emptyIfNil(certificates), nil
}

// emptyIfNil keeps "no documents" rendering as an empty list rather
// than a JSON null.
func emptyIfNil(prescriptions []models.Prescription) []models.Prescription {
	if prescriptions == nil {
		return []models.Prescription{}
	}
	return prescriptions
}
