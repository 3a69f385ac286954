package controllers

import (
	"net/http"
	"sync"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, sessionManager contracts.SessionManager) *SessionController {
	onceSessionController.Do(func() {
		instance := &SessionController{
			Log:            logger,
			SessionManager: sessionManager,
		}
		sessionControllerInstance = instance
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SessionController.GetSession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SessionController.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session := responses.Session{
		Ready:   ctrl.SessionManager.Ready(),
		Patient: ctrl.SessionManager.Patient(),
		Theme:   ctrl.SessionManager.Theme(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, session)
}

func (ctrl *SessionController) ClearSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SessionController.ClearSession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SessionController.ClearSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctrl.SessionManager.ClearPatient(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearSessionSuccessMessage, nil)
}

func (ctrl *SessionController) SetTheme(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SessionController.SetTheme requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.SetTheme)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SessionController.SetTheme error decoding request body",
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

	ctrl.Log.Info("SessionController.SetTheme called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("theme", request.Theme),
	)

	ctrl.SessionManager.SetTheme(r.Context(), request.Theme)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetThemeSuccessMessage, nil)
}
