// Package medications implements the public medication price lookup.
// Search is throttled locally because the UI fires a query per keystroke
// and the council backend has no rate protection of its own.
package medications

import (
	"context"
	"strings"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type medicationUsecase struct {
	MedicationClient contracts.MedicationBackendClient
	Limiter          *rate.Limiter
	Log              *zap.Logger
}

func NewMedicationUsecase(medicationClient contracts.MedicationBackendClient, searchPerSecond float64, searchBurst int, logger *zap.Logger) contracts.MedicationUsecase {
	return &medicationUsecase{
		MedicationClient: medicationClient,
		Limiter:          rate.NewLimiter(rate.Limit(searchPerSecond), searchBurst),
		Log:              logger,
	}
}

func (uc *medicationUsecase) Search(ctx context.Context, query string) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Medication{}, nil
	}

	if !uc.Limiter.Allow() {
		uc.Log.Warn("medicationUsecase.Search throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, query),
		)
		return nil, exceptions.ErrRateLimited(nil)
	}

	uc.Log.Info("medicationUsecase.Search",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	medications, err := uc.MedicationClient.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if medications == nil {
		medications = []models.Medication{}
	}
	return medications, nil
}
