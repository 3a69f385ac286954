// Package insurances serves the obras sociales catalog used by the
// registration and profile forms.
package insurances

import (
	"context"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type insuranceUsecase struct {
	InsuranceClient contracts.InsuranceBackendClient
	Log             *zap.Logger
}

func NewInsuranceUsecase(insuranceClient contracts.InsuranceBackendClient, logger *zap.Logger) contracts.InsuranceUsecase {
	return &insuranceUsecase{
		InsuranceClient: insuranceClient,
		Log:             logger,
	}
}

func (uc *insuranceUsecase) ListObrasSociales(ctx context.Context) ([]models.ObraSocial, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insuranceUsecase.ListObrasSociales",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	obras, err := uc.InsuranceClient.ListObrasSociales(ctx)
	if err != nil {
		return nil, err
	}
	if obras == nil {
		obras = []models.ObraSocial{}
	}
	return obras, nil
}
