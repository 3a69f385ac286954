package backend

import (
	"context"
	"fmt"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type recordsBackendClient struct {
	REST *restClient
	Log  *zap.Logger
}

func NewRecordsBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.RecordsBackendClient {
	return &recordsBackendClient{
		REST: newRESTClient(internalConfig, logger),
		Log:  logger,
	}
}

func (c *recordsBackendClient) PrescriptionsByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordsBackendClient.PrescriptionsByDNI",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	path := fmt.Sprintf("%s/%s", constvars.ResourcePrescriptions, dni)
	result := new(responses.Prescriptions)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, path, nil, nil, result, constvars.ResourcePrescriptions); err != nil {
		return nil, err
	}
	return result.Prescriptions, nil
}

func (c *recordsBackendClient) StudiesByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordsBackendClient.StudiesByDNI",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	path := fmt.Sprintf("%s/%s", constvars.ResourceStudies, dni)
	result := new(responses.Studies)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, path, nil, nil, result, constvars.ResourceStudies); err != nil {
		return nil, err
	}
	return result.Studies, nil
}

func (c *recordsBackendClient) CertificatesByDNI(ctx context.Context, dni string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordsBackendClient.CertificatesByDNI",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	path := fmt.Sprintf("%s/%s", constvars.ResourceCertificates, dni)
	result := new(responses.Certificates)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, path, nil, nil, result, constvars.ResourceCertificates); err != nil {
		return nil, err
	}
	return result.Certificates, nil
}
