package directory

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/contracts"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/directory"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"directory-service/internal/pkg/exceptions"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type directoryUsecase struct {
	Registry          *Registry
	Loader            *Loader
	SubmissionClient  contracts.SubmissionClient
	LockerService     contracts.LockerService
	Publisher         contracts.NotificationPublisher
	SubmissionTimeout time.Duration
	LockTimeout       time.Duration
	Location          *time.Location
	Log               *zap.Logger
}

// submissionMessages are the notifications of one kind of submission.
type submissionMessages struct {
	succeeded string
	failed    string
	errored   string
}

var (
	inquiryMessages = submissionMessages{
		succeeded: constvars.NotifyInquirySent,
		failed:    constvars.NotifyInquiryFailed,
		errored:   constvars.NotifyInquiryError,
	}
	appointmentMessages = submissionMessages{
		succeeded: constvars.NotifyAppointmentBooked,
		failed:    constvars.NotifyAppointmentFailed,
		errored:   constvars.NotifyAppointmentError,
	}
)

// NewDirectoryUsecase wires a usecase. publisher may be nil.
func NewDirectoryUsecase(
	registry *Registry,
	loader *Loader,
	submissionClient contracts.SubmissionClient,
	lockerService contracts.LockerService,
	publisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DirectoryUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("directoryUsecase: unknown timezone, using UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &directoryUsecase{
		Registry:          registry,
		Loader:            loader,
		SubmissionClient:  submissionClient,
		LockerService:     lockerService,
		Publisher:         publisher,
		SubmissionTimeout: time.Duration(internalConfig.Collaborator.RequestTimeoutInSeconds) * time.Second,
		LockTimeout:       time.Duration(internalConfig.Directory.SubmissionLockTimeoutInSeconds) * time.Second,
		Location:          location,
		Log:               logger,
	}
}

func (uc *directoryUsecase) now() time.Time {
	return time.Now().In(uc.Location)
}

func (uc *directoryUsecase) Catalog(ctx context.Context) *responses.Catalog {
	return &responses.Catalog{
		Categories:      []models.Category{models.CategoryDoctor, models.CategoryHospital},
		Districts:       directory.Districts,
		Specializations: directory.Specializations,
		PageSize:        directory.PageSize,
	}
}

func (uc *directoryUsecase) CreateView(ctx context.Context, session *models.Session, request *requests.CreateView, wait bool) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	category := models.CategoryDoctor
	if request.Category != "" {
		parsed, ok := models.ParseCategory(request.Category)
		if !ok {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown category %q", request.Category))
		}
		category = parsed
	}

	v := uc.Registry.create(session, category)
	uc.Log.Info("directoryUsecase.CreateView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, v.id),
		zap.String(constvars.LoggingCategoryKey, string(category)),
	)

	done := uc.Loader.Load(ctx, v, session)
	if wait {
		waitFor(ctx, done)
	}
	return uc.render(v), nil
}

func (uc *directoryUsecase) GetView(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	v, err := uc.Registry.get(session, viewID)
	if err != nil {
		return nil, err
	}
	return uc.render(v), nil
}

func (uc *directoryUsecase) DisposeView(ctx context.Context, session *models.Session, viewID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if _, err := uc.Registry.get(session, viewID); err != nil {
		return err
	}
	uc.Registry.remove(viewID)

	uc.Log.Info("directoryUsecase.DisposeView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, viewID),
	)
	return nil
}

func (uc *directoryUsecase) SwitchCategory(ctx context.Context, session *models.Session, viewID string, request *requests.SwitchCategory, wait bool) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	category, ok := models.ParseCategory(request.Category)
	if !ok {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown category %q", request.Category))
	}

	v, err := uc.Registry.get(session, viewID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.switchCategory(category)
	v.mu.Unlock()

	uc.Log.Info("directoryUsecase.SwitchCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, viewID),
		zap.String(constvars.LoggingCategoryKey, string(category)),
	)

	done := uc.Loader.Load(ctx, v, session)
	if wait {
		waitFor(ctx, done)
	}
	return uc.render(v), nil
}

func (uc *directoryUsecase) ApplyFilters(ctx context.Context, session *models.Session, viewID string, request *requests.ApplyFilters) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	criteria := directory.Criteria{
		Search:         request.Search,
		District:       request.District,
		Specialization: request.Specialization,
	}
	uc.Log.Info("directoryUsecase.ApplyFilters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, viewID),
		zap.Any(constvars.LoggingCriteriaKey, criteria),
	)

	return uc.mutate(session, viewID, func(v *view) error {
		v.setCriteria(criteria)
		return nil
	})
}

func (uc *directoryUsecase) ClearFilters(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		v.setCriteria(directory.Criteria{})
		return nil
	})
}

func (uc *directoryUsecase) ChangePage(ctx context.Context, session *models.Session, viewID string, request *requests.ChangePage) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Debug("directoryUsecase.ChangePage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, viewID),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	return uc.mutate(session, viewID, func(v *view) error {
		v.setPage(request.Page)
		return nil
	})
}

func (uc *directoryUsecase) SelectRecord(ctx context.Context, session *models.Session, viewID string, request *requests.SelectRecord) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("directoryUsecase.SelectRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, viewID),
		zap.String(constvars.LoggingRecordIDKey, request.RecordID),
	)

	return uc.mutate(session, viewID, func(v *view) error {
		switch v.category {
		case models.CategoryHospital:
			hospital, ok := v.findHospital(request.RecordID)
			if !ok {
				return exceptions.ErrRecordNotFound(request.RecordID, string(v.category))
			}
			return v.presenter.openHospital(hospital)
		default:
			doctor, ok := v.findDoctor(request.RecordID)
			if !ok {
				return exceptions.ErrRecordNotFound(request.RecordID, string(v.category))
			}
			return v.presenter.openDoctor(doctor)
		}
	})
}

func (uc *directoryUsecase) CloseDetail(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		return v.presenter.closeDetail()
	})
}

func (uc *directoryUsecase) OpenInquiry(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		return v.presenter.openInquiry(session)
	})
}

func (uc *directoryUsecase) CloseInquiry(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		return v.presenter.closeInquiry()
	})
}

func (uc *directoryUsecase) OpenAppointment(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		return v.presenter.openAppointment()
	})
}

func (uc *directoryUsecase) CloseAppointment(ctx context.Context, session *models.Session, viewID string) (*responses.ViewSnapshot, error) {
	return uc.mutate(session, viewID, func(v *view) error {
		return v.presenter.closeAppointment()
	})
}

func (uc *directoryUsecase) SubmitInquiry(ctx context.Context, session *models.Session, viewID string, form *requests.InquiryForm) (*responses.ViewSnapshot, error) {
	v, err := uc.Registry.get(session, viewID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if err := uc.beginSubmission(v, PresenterInquiryOpen); err != nil {
		v.mu.Unlock()
		return nil, err
	}
	if v.presenter.inquiry != nil {
		v.presenter.inquiry.PatientName = form.PatientName
		v.presenter.inquiry.PatientEmail = form.PatientEmail
		v.presenter.inquiry.PatientPhone = form.PatientPhone
		v.presenter.inquiry.Message = form.Message
	}
	payload, problem := v.presenter.buildInquiry(form)
	if problem != "" {
		return uc.reject(ctx, v, problem), nil
	}
	recordID := v.presenter.recordID()
	token := v.nextSend()
	v.presenter.beginSend(token)
	v.mu.Unlock()

	return uc.deliver(ctx, session, v, PresenterInquiryOpen, recordID, token, inquiryMessages, func(ctx context.Context) (*responses.CollaboratorResult, error) {
		return uc.SubmissionClient.SendInquiry(ctx, session, payload)
	})
}

func (uc *directoryUsecase) SubmitAppointment(ctx context.Context, session *models.Session, viewID string, form *requests.AppointmentForm) (*responses.ViewSnapshot, error) {
	v, err := uc.Registry.get(session, viewID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if err := uc.beginSubmission(v, PresenterAppointmentOpen); err != nil {
		v.mu.Unlock()
		return nil, err
	}
	payload, problem := v.presenter.buildAppointment(session, form, uc.now())
	if problem != "" {
		return uc.reject(ctx, v, problem), nil
	}
	recordID := v.presenter.recordID()
	token := v.nextSend()
	v.presenter.beginSend(token)
	v.mu.Unlock()

	return uc.deliver(ctx, session, v, PresenterAppointmentOpen, recordID, token, appointmentMessages, func(ctx context.Context) (*responses.CollaboratorResult, error) {
		return uc.SubmissionClient.CreateAppointment(ctx, session, payload)
	})
}

// beginSubmission checks that the form is open and idle. Callers hold v.mu.
func (uc *directoryUsecase) beginSubmission(v *view, form PresenterState) error {
	if v.presenter.state != form {
		return exceptions.ErrInvalidTransition(string(v.presenter.state), string(form))
	}
	if v.presenter.sending {
		return exceptions.ErrSubmissionInProgress(string(form))
	}
	return nil
}

// reject raises a validation notification without any network call. It
// releases v.mu.
func (uc *directoryUsecase) reject(ctx context.Context, v *view, problem string) *responses.ViewSnapshot {
	notification := v.notify(constvars.NotificationLevelError, problem)
	snapshot := v.snapshot(uc.now())
	v.mu.Unlock()

	uc.publish(ctx, notification)
	return snapshot
}

// deliver sends a validated submission under the per-person lock and records
// the outcome on v. A send superseded by a presenter reset only raises its
// notification; the presenter now belongs to a newer flow.
func (uc *directoryUsecase) deliver(
	ctx context.Context,
	session *models.Session,
	v *view,
	form PresenterState,
	recordID string,
	token uint64,
	messages submissionMessages,
	send func(ctx context.Context) (*responses.CollaboratorResult, error),
) (*responses.ViewSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	subject := v.id
	if session.Authenticated() {
		subject = session.Subject
	}
	lockKey := fmt.Sprintf(constvars.RedisKeySubmissionLockFormat, subject, strings.TrimSuffix(string(form), "_open"), recordID)

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.LockTimeout)
	if err != nil || !acquired {
		v.mu.Lock()
		v.presenter.finishSend(token)
		if err != nil {
			v.mu.Unlock()
			return nil, err
		}
		notification := v.notify(constvars.NotificationLevelInfo, constvars.NotifySubmissionInProgress)
		snapshot := v.snapshot(uc.now())
		v.mu.Unlock()

		uc.publish(ctx, notification)
		return snapshot, nil
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("directoryUsecase.deliver failed to release submission lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, uc.SubmissionTimeout)
	defer cancel()
	result, sendErr := send(sendCtx)

	v.mu.Lock()
	current := v.presenter.finishSend(token)
	var notification models.Notification
	switch {
	case sendErr != nil:
		uc.Log.Error("directoryUsecase.deliver submission failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewIDKey, v.id),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(sendErr),
		)
		notification = v.notify(constvars.NotificationLevelError, messages.errored)
	case result == nil || !result.Success:
		message := messages.failed
		if result != nil && result.Message != "" {
			message = result.Message
		}
		notification = v.notify(constvars.NotificationLevelError, message)
	default:
		if current {
			v.presenter.succeed(form, recordID)
		}
		notification = v.notify(constvars.NotificationLevelSuccess, messages.succeeded)
	}
	snapshot := v.snapshot(uc.now())
	v.mu.Unlock()

	uc.Log.Info("directoryUsecase.deliver finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, v.id),
		zap.String(constvars.LoggingPresenterStateKey, snapshot.Presenter.State),
		zap.String(constvars.LoggingNotificationKey, notification.Message),
	)
	uc.publish(ctx, notification)
	return snapshot, nil
}

func (uc *directoryUsecase) mutate(session *models.Session, viewID string, change func(v *view) error) (*responses.ViewSnapshot, error) {
	v, err := uc.Registry.get(session, viewID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err := change(v); err != nil {
		return nil, err
	}
	return v.snapshot(uc.now()), nil
}

func (uc *directoryUsecase) render(v *view) *responses.ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot(uc.now())
}

func (uc *directoryUsecase) publish(ctx context.Context, notification models.Notification) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.Publish(ctx, notification); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("directoryUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func waitFor(ctx context.Context, done <-chan struct{}) {
	select {
	case <-done:
	case <-ctx.Done():
	}
}
