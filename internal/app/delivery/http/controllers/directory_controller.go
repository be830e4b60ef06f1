package controllers

import (
	"context"
	"directory-service/internal/app/models"
	"directory-service/internal/app/services/core/directory"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"directory-service/internal/pkg/exceptions"
	"directory-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase directory.DirectoryUsecase
	Timeout          time.Duration
}

var (
	directoryControllerInstance *DirectoryController
	onceDirectoryController     sync.Once
)

// NewDirectoryController builds the controller once. timeout bounds every
// request, including the wait for a directory load.
func NewDirectoryController(logger *zap.Logger, directoryUsecase directory.DirectoryUsecase, timeout time.Duration) *DirectoryController {
	onceDirectoryController.Do(func() {
		directoryControllerInstance = &DirectoryController{
			Log:              logger,
			DirectoryUsecase: directoryUsecase,
			Timeout:          timeout,
		}
	})
	return directoryControllerInstance
}

func (ctrl *DirectoryController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogSuccessMessage, ctrl.DirectoryUsecase.Catalog(r.Context()))
}

func (ctrl *DirectoryController) CreateView(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DirectoryController.CreateView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateView)
	if r.ContentLength != 0 {
		if !ctrl.decode(w, r, "CreateView", request) {
			return
		}
	}
	if !ctrl.validate(w, requestID, "CreateView", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	snapshot, err := ctrl.DirectoryUsecase.CreateView(ctx, sessionFrom(r), request, !isAsync(r))
	ctrl.respond(w, requestID, "CreateView", constvars.StatusCreated, constvars.CreateViewSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) GetView(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.GetView(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "GetView", constvars.StatusOK, constvars.GetViewSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) DisposeView(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DirectoryController.DisposeView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := ctrl.DirectoryUsecase.DisposeView(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "DisposeView", constvars.StatusOK, constvars.DisposeViewSuccessMessage, nil, err)
}

func (ctrl *DirectoryController) SwitchCategory(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DirectoryController.SwitchCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SwitchCategory)
	if !ctrl.decode(w, r, "SwitchCategory", request) || !ctrl.validate(w, requestID, "SwitchCategory", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	snapshot, err := ctrl.DirectoryUsecase.SwitchCategory(ctx, sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), request, !isAsync(r))
	ctrl.respond(w, requestID, "SwitchCategory", constvars.StatusOK, constvars.SwitchCategorySuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.ApplyFilters)
	if !ctrl.decode(w, r, "ApplyFilters", request) {
		return
	}
	utils.SanitizeApplyFiltersRequest(request)
	if !ctrl.validate(w, requestID, "ApplyFilters", request) {
		return
	}

	snapshot, err := ctrl.DirectoryUsecase.ApplyFilters(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), request)
	ctrl.respond(w, requestID, "ApplyFilters", constvars.StatusOK, constvars.ApplyFiltersSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) ClearFilters(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.ClearFilters(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "ClearFilters", constvars.StatusOK, constvars.ClearFiltersSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) ChangePage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.ChangePage)
	if !ctrl.decode(w, r, "ChangePage", request) || !ctrl.validate(w, requestID, "ChangePage", request) {
		return
	}

	snapshot, err := ctrl.DirectoryUsecase.ChangePage(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), request)
	ctrl.respond(w, requestID, "ChangePage", constvars.StatusOK, constvars.ChangePageSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) SelectRecord(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.SelectRecord)
	if !ctrl.decode(w, r, "SelectRecord", request) || !ctrl.validate(w, requestID, "SelectRecord", request) {
		return
	}

	snapshot, err := ctrl.DirectoryUsecase.SelectRecord(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), request)
	ctrl.respond(w, requestID, "SelectRecord", constvars.StatusOK, constvars.SelectRecordSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) CloseDetail(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.CloseDetail(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "CloseDetail", constvars.StatusOK, constvars.CloseDetailSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) OpenInquiry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.OpenInquiry(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "OpenInquiry", constvars.StatusOK, constvars.OpenInquirySuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) CloseInquiry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.CloseInquiry(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "CloseInquiry", constvars.StatusOK, constvars.CloseInquirySuccessMessage, snapshot, err)
}

// SubmitInquiry answers 200 even when the form is rejected; the outcome is
// in the snapshot's notifications.
func (ctrl *DirectoryController) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DirectoryController.SubmitInquiry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := new(requests.InquiryForm)
	if !ctrl.decode(w, r, "SubmitInquiry", form) {
		return
	}
	utils.SanitizeInquiryForm(form)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	snapshot, err := ctrl.DirectoryUsecase.SubmitInquiry(ctx, sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), form)
	ctrl.respond(w, requestID, "SubmitInquiry", constvars.StatusOK, constvars.SubmitInquirySuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) OpenAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.OpenAppointment(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "OpenAppointment", constvars.StatusOK, constvars.OpenAppointmentSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) CloseAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	snapshot, err := ctrl.DirectoryUsecase.CloseAppointment(r.Context(), sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID))
	ctrl.respond(w, requestID, "CloseAppointment", constvars.StatusOK, constvars.CloseAppointmentSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) SubmitAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DirectoryController.SubmitAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := new(requests.AppointmentForm)
	if !ctrl.decode(w, r, "SubmitAppointment", form) {
		return
	}
	utils.SanitizeAppointmentForm(form)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	snapshot, err := ctrl.DirectoryUsecase.SubmitAppointment(ctx, sessionFrom(r), chi.URLParam(r, constvars.URLParamViewID), form)
	ctrl.respond(w, requestID, "SubmitAppointment", constvars.StatusOK, constvars.SubmitAppointmentSuccessMessage, snapshot, err)
}

func (ctrl *DirectoryController) decode(w http.ResponseWriter, r *http.Request, method string, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Error("DirectoryController."+method+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

func (ctrl *DirectoryController) validate(w http.ResponseWriter, requestID, method string, request interface{}) bool {
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DirectoryController."+method+" validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *DirectoryController) respond(w http.ResponseWriter, requestID, method string, status int, message string, snapshot *responses.ViewSnapshot, err error) {
	if err != nil {
		ctrl.Log.Error("DirectoryController."+method+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if snapshot == nil {
		utils.BuildSuccessResponse(w, status, message, nil)
		return
	}
	utils.BuildSuccessResponse(w, status, message, snapshot)
}

// sessionFrom returns the caller's session, anonymous when no token was sent.
func sessionFrom(r *http.Request) *models.Session {
	if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && session != nil {
		return session
	}
	return &models.Session{}
}

func isAsync(r *http.Request) bool {
	async, err := strconv.ParseBool(r.URL.Query().Get(constvars.URLQueryParamAsync))
	return err == nil && async
}
