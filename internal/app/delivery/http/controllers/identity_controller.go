package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IdentityController struct {
	Log             *zap.Logger
	IdentityUsecase contracts.IdentityUsecase
}

var (
	identityControllerInstance *IdentityController
	onceIdentityController     sync.Once
)

func NewIdentityController(logger *zap.Logger, identityUsecase contracts.IdentityUsecase) *IdentityController {
	onceIdentityController.Do(func() {
		instance := &IdentityController{
			Log:             logger,
			IdentityUsecase: identityUsecase,
		}
		identityControllerInstance = instance
	})
	return identityControllerInstance
}

func (ctrl *IdentityController) VerifyScan(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IdentityController.VerifyScan requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.VerifyScan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IdentityController.VerifyScan error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("IdentityController.VerifyScan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.IdentityUsecase.VerifyScan(ctx, request.Payload)
	if err != nil {
		ctrl.Log.Error("IdentityController.VerifyScan error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IdentityController.VerifyScan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, result.Outcome),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyScanSuccessMessage, result)
}

func (ctrl *IdentityController) Register(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IdentityController.Register requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.RegisterPatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IdentityController.Register error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("IdentityController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, request.DNI),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	patient, err := ctrl.IdentityUsecase.Register(ctx, request)
	if err != nil {
		ctrl.Log.Error("IdentityController.Register error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, patient)
}

func (ctrl *IdentityController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("IdentityController.Update requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("IdentityController.Update error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("IdentityController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	patient, err := ctrl.IdentityUsecase.UpdateProfile(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("IdentityController.Update error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, patient)
}
