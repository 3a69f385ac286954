// Package identity implements the scan-verify-register journey: a PDF417
// document scan resolves into either an implicit login against the
// backend record or a prefilled registration form.
package identity

import (
	"context"
	"sync/atomic"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/scanner"
	"pacientes-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type identityUsecase struct {
	PatientClient  contracts.PatientBackendClient
	SessionManager contracts.SessionManager
	Log            *zap.Logger

	// verifying serializes scan verification: a second scan while one is
	// already resolving against the backend is rejected, not queued.
	verifying atomic.Bool
}

func NewIdentityUsecase(patientClient contracts.PatientBackendClient, sessionManager contracts.SessionManager, logger *zap.Logger) contracts.IdentityUsecase {
	return &identityUsecase{
		PatientClient:  patientClient,
		SessionManager: sessionManager,
		Log:            logger,
	}
}

func (uc *identityUsecase) VerifyScan(ctx context.Context, payload string) (*responses.VerifyScan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.verifying.CompareAndSwap(false, true) {
		uc.Log.Warn("identityUsecase.VerifyScan rejected concurrent scan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrVerificationInFlight()
	}
	defer uc.verifying.Store(false)

	scanData, err := scanner.ParsePDF417(payload)
	if err != nil {
		uc.Log.Warn("identityUsecase.VerifyScan unreadable payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("identityUsecase.VerifyScan checking document",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, scanData.DNI),
	)

	result, err := uc.PatientClient.CheckByDNI(ctx, scanData.DNI, scanData)
	if err != nil {
		// The lookup is best effort: when the backend cannot answer the
		// patient still gets the registration form, prefilled from the
		// scan. Registration itself will surface a real failure.
		uc.Log.Warn("identityUsecase.VerifyScan lookup failed, routing to registration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDNIKey, scanData.DNI),
			zap.Error(err),
		)
		return uc.buildRegisterOutcome(requestID, scanData), nil
	}

	if result.Exists && result.Patient != nil {
		uc.SessionManager.SetPatient(ctx, result.Patient)
		uc.Log.Info("identityUsecase.VerifyScan resolved to login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOutcomeKey, responses.VerifyOutcomeLogin),
			zap.Bool("record_refreshed", result.Updated),
		)
		return &responses.VerifyScan{
			Outcome: responses.VerifyOutcomeLogin,
			Patient: result.Patient,
			Updated: result.Updated,
		}, nil
	}

	return uc.buildRegisterOutcome(requestID, scanData), nil
}

func (uc *identityUsecase) buildRegisterOutcome(requestID string, scanData *models.DNIScanData) *responses.VerifyScan {
	uc.Log.Info("identityUsecase.VerifyScan resolved to registration",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, responses.VerifyOutcomeRegister),
	)
	return &responses.VerifyScan{
		Outcome: responses.VerifyOutcomeRegister,
		Prefill: &responses.RegisterPrefill{
			DNI:         scanData.DNI,
			Nombre:      scanData.Nombre,
			Apellido:    scanData.Apellido,
			Sexo:        scanData.Sexo,
			FecNac:      utils.FormatDateToISO(scanData.FecNac),
			FromDNIScan: true,
		},
	}
}

func (uc *identityUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientClient.Register(ctx, request)
	if err != nil {
		customErr, ok := err.(*exceptions.CustomError)
		if ok && customErr.StatusCode == constvars.StatusConflict {
			// The record already exists, which means the patient is who
			// they say they are: a conflict on registration is an implicit
			// login with the data they just typed.
			uc.Log.Info("identityUsecase.Register conflict, treating as login",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDNIKey, request.DNI),
			)
			existing := patientFromRegisterForm(request)
			uc.SessionManager.SetPatient(ctx, existing)
			return existing, nil
		}
		return nil, err
	}

	if patient == nil {
		// Some backend deployments acknowledge without echoing the record.
		patient = patientFromRegisterForm(request)
	}
	uc.SessionManager.SetPatient(ctx, patient)
	uc.Log.Info("identityUsecase.Register created patient",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, request.DNI),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (uc *identityUsecase) UpdateProfile(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientClient.Update(ctx, patientID, request)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		patient = applyProfileUpdate(uc.SessionManager.Patient(), request)
	}

	uc.SessionManager.SetPatient(ctx, patient)
	uc.Log.Info("identityUsecase.UpdateProfile updated patient",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func patientFromRegisterForm(request *requests.RegisterPatient) *models.Patient {
	return &models.Patient{
		DNI:          request.DNI,
		Nombre:       request.Nombre,
		Apellido:     request.Apellido,
		Sexo:         request.Sexo,
		FecNac:       request.FecNac,
		Email:        request.Email,
		Telefono:     request.Telefono,
		Calle:        request.Calle,
		Numero:       request.Numero,
		Piso:         request.Piso,
		Departamento: request.Departamento,
		Ciudad:       request.Ciudad,
		Provincia:    request.Provincia,
		CPostal:      request.CPostal,
		Peso:         request.Peso,
		Talla:        request.Talla,
		IDObraSocial: request.IDObraSocial,
		NroAfiliado:  request.NroAfiliado,
	}
}

// applyProfileUpdate folds the submitted editable fields onto the resident
// record when the backend acknowledged without echoing it back. Empty
// fields keep their stored value, the same rule the wire format applies.
func applyProfileUpdate(current *models.Patient, request *requests.UpdatePatient) *models.Patient {
	patient := &models.Patient{}
	if current != nil {
		*patient = *current
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.Telefono != "" {
		patient.Telefono = request.Telefono
	}
	if request.Calle != "" {
		patient.Calle = request.Calle
	}
	if request.Numero != "" {
		patient.Numero = request.Numero
	}
	if request.Piso != "" {
		patient.Piso = request.Piso
	}
	if request.Departamento != "" {
		patient.Departamento = request.Departamento
	}
	if request.Ciudad != "" {
		patient.Ciudad = request.Ciudad
	}
	if request.Provincia != "" {
		patient.Provincia = request.Provincia
	}
	if request.CPostal != "" {
		patient.CPostal = request.CPostal
	}
	if request.Peso != nil {
		patient.Peso = request.Peso
	}
	if request.Talla != nil {
		patient.Talla = request.Talla
	}
	if request.IDObraSocial != "" {
		patient.IDObraSocial = request.IDObraSocial
	}
	if request.NroAfiliado != "" {
		patient.NroAfiliado = request.NroAfiliado
	}
	return patient
}
