package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type LookupController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
	InsuranceUsecase  contracts.InsuranceUsecase
}

var (
	lookupControllerInstance *LookupController
	onceLookupController     sync.Once
)

func NewLookupController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase, insuranceUsecase contracts.InsuranceUsecase) *LookupController {
	onceLookupController.Do(func() {
		instance := &LookupController{
			Log:               logger,
			MedicationUsecase: medicationUsecase,
			InsuranceUsecase:  insuranceUsecase,
		}
		lookupControllerInstance = instance
	})
	return lookupControllerInstance
}

func (ctrl *LookupController) SearchMedications(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LookupController.SearchMedications requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	query := r.URL.Query().Get(constvars.URLQueryParamSearch)
	ctrl.Log.Info("LookupController.SearchMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	medications, err := ctrl.MedicationUsecase.Search(ctx, query)
	if err != nil {
		ctrl.Log.Error("LookupController.SearchMedications error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchMedicationsSuccessMessage, medications)
}

func (ctrl *LookupController) GetObrasSociales(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LookupController.GetObrasSociales requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LookupController.GetObrasSociales called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	obras, err := ctrl.InsuranceUsecase.ListObrasSociales(ctx)
	if err != nil {
		ctrl.Log.Error("LookupController.GetObrasSociales error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObrasSocialesSuccessMessage, obras)
}
