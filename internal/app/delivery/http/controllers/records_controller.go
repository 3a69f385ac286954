package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecordsController struct {
	Log            *zap.Logger
	RecordsUsecase contracts.RecordsUsecase
}

var (
	recordsControllerInstance *RecordsController
	onceRecordsController     sync.Once
)

func NewRecordsController(logger *zap.Logger, recordsUsecase contracts.RecordsUsecase) *RecordsController {
	onceRecordsController.Do(func() {
		instance := &RecordsController{
			Log:            logger,
			RecordsUsecase: recordsUsecase,
		}
		recordsControllerInstance = instance
	})
	return recordsControllerInstance
}

func (ctrl *RecordsController) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctrl.serveDocuments(w, r, "GetPrescriptions", constvars.GetPrescriptionsSuccessMessage, ctrl.RecordsUsecase.Prescriptions)
}

func (ctrl *RecordsController) GetStudies(w http.ResponseWriter, r *http.Request) {
	ctrl.serveDocuments(w, r, "GetStudies", constvars.GetStudiesSuccessMessage, ctrl.RecordsUsecase.Studies)
}

func (ctrl *RecordsController) GetCertificates(w http.ResponseWriter, r *http.Request) {
	ctrl.serveDocuments(w, r, "GetCertificates", constvars.GetCertificatesSuccessMessage, ctrl.RecordsUsecase.Certificates)
}

func (ctrl *RecordsController) serveDocuments(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	successMessage string,
	fetch func(ctx context.Context, dni string) ([]models.Prescription, error),
) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RecordsController." + operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	dni := chi.URLParam(r, constvars.URLParamDNI)
	ctrl.Log.Info("RecordsController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDNIKey, dni),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	documents, err := fetch(ctx, dni)
	if err != nil {
		ctrl.Log.Error("RecordsController."+operation+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, documents)
}
