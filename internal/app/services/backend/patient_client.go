package backend

import (
	"context"
	"fmt"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientBackendClient struct {
	REST *restClient
	Log  *zap.Logger
}

func NewPatientBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PatientBackendClient {
	return &patientBackendClient{
		REST: newRESTClient(internalConfig, logger),
		Log:  logger,
	}
}

func (c *patientBackendClient) CheckByDNI(ctx context.Context, dni string, scanData *models.DNIScanData) (*responses.CheckPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.CheckByDNI",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	headers := map[string]string{}
	if scanData != nil {
		// The scanned fragment rides along so the backend can refresh a
		// stale stored record. A marshal failure here only loses the
		// refresh, never the lookup.
		scanJSON, err := json.Marshal(scanData)
		if err == nil {
			headers[constvars.HeaderXDNIData] = string(scanJSON)
		}
	}

	path := fmt.Sprintf("%s/%s", constvars.ResourcePatientCheck, dni)
	result := new(responses.CheckPatient)
	if err := c.REST.doJSON(ctx, constvars.MethodGet, path, headers, nil, result, constvars.ResourcePatientCheck); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *patientBackendClient) Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Register",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, request.DNI),
	)

	envelope := new(responses.PatientEnvelope)
	if err := c.REST.doJSON(ctx, constvars.MethodPost, constvars.ResourcePatients, nil, request, envelope, constvars.ResourcePatients); err != nil {
		return nil, err
	}
	return envelope.Patient, nil
}

func (c *patientBackendClient) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Update",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := fmt.Sprintf("%s/%s", constvars.ResourcePatients, patientID)
	envelope := new(responses.PatientEnvelope)
	if err := c.REST.doJSON(ctx, constvars.MethodPut, path, nil, request, envelope, constvars.ResourcePatients); err != nil {
		return nil, err
	}
	return envelope.Patient, nil
}
