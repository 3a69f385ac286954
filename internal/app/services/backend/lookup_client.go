package backend

import (
	"context"
	"fmt"
	"net/url"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type medicationBackendClient struct {
	REST *restClient
	Log  *zap.Logger
}

func NewMedicationBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MedicationBackendClient {
	return &medicationBackendClient{
		REST: newRESTClient(internalConfig, logger),
		Log:  logger,
	}
}

func (c *medicationBackendClient) Search(ctx context.Context, query string) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationBackendClient.Search",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	path := fmt.Sprintf("%s?%s=%s", constvars.ResourceMedicationSearch, constvars.URLQueryParamSearch, url.QueryEscape(query))
	result := new(responses.MedicationSearch)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, path, nil, nil, result, constvars.ResourceMedicationSearch); err != nil {
		return nil, err
	}
	return result.Results, nil
}

type insuranceBackendClient struct {
	REST *restClient
	Log  *zap.Logger
}

func NewInsuranceBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.InsuranceBackendClient {
	return &insuranceBackendClient{
		REST: newRESTClient(internalConfig, logger),
		Log:  logger,
	}
}

func (c *insuranceBackendClient) ListObrasSociales(ctx context.Context) ([]models.ObraSocial, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("insuranceBackendClient.ListObrasSociales",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.ObrasSociales)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, constvars.ResourceObrasSociales, nil, nil, result, constvars.ResourceObrasSociales); err != nil {
		return nil, err
	}
	return result.ObrasSociales, nil
}
