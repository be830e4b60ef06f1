package directory

import (
	"context"
	"directory-service/internal/app/contracts"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/dto/responses"
	"directory-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Loader fetches the whole corpus of a category into a view. Only the most
// recently started load of a view may write to it.
type Loader struct {
	Source    contracts.DirectorySource
	Publisher contracts.NotificationPublisher
	Timeout   time.Duration
	Log       *zap.Logger
}

func NewLoader(source contracts.DirectorySource, publisher contracts.NotificationPublisher, timeout time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		Source:    source,
		Publisher: publisher,
		Timeout:   timeout,
		Log:       logger,
	}
}

// Load supersedes any load in flight for v and starts a new one for its
// current category. The returned channel closes once the load has settled,
// whether or not its result was kept.
func (l *Loader) Load(ctx context.Context, v *view, session *models.Session) <-chan struct{} {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	v.mu.Lock()
	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	v.generation++
	generation := v.generation
	category := v.category
	loadCtx, cancel := context.WithTimeout(context.WithValue(v.ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), l.Timeout)
	v.cancelLoad = cancel
	v.loadState = responses.LoadStateLoading
	v.mu.Unlock()

	l.Log.Info("directory.Loader.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, v.id),
		zap.String(constvars.LoggingCategoryKey, string(category)),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		var (
			doctors   []models.Doctor
			hospitals []models.Hospital
			err       error
		)
		switch category {
		case models.CategoryHospital:
			hospitals, err = l.Source.FindHospitals(loadCtx, session)
		default:
			doctors, err = l.Source.FindDoctors(loadCtx, session)
		}

		notification, kept := l.settle(loadCtx, v, generation, category, doctors, hospitals, err)
		if kept && notification != nil && l.Publisher != nil {
			if pubErr := l.Publisher.Publish(context.WithoutCancel(loadCtx), *notification); pubErr != nil {
				l.Log.Warn("directory.Loader.Load failed to publish notification",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(pubErr),
				)
			}
		}
	}()
	return done
}

// settle writes a finished load into v unless a newer load has started or v
// is gone.
func (l *Loader) settle(ctx context.Context, v *view, generation uint64, category models.Category, doctors []models.Doctor, hospitals []models.Hospital, err error) (*models.Notification, bool) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed || generation != v.generation {
		l.Log.Info("directory.Loader.settle discarded stale load",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewIDKey, v.id),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil, false
	}

	v.cancelLoad = nil
	v.loadState = responses.LoadStateCompleted

	if err != nil {
		v.doctors = nil
		v.hospitals = nil
		message := loadFailureMessage(ctx, category, err)
		l.Log.Error("directory.Loader.settle load failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewIDKey, v.id),
			zap.String(constvars.LoggingCategoryKey, string(category)),
			zap.Int(constvars.LoggingUpstreamStatusKey, exceptions.UpstreamStatus(err)),
			zap.Error(err),
		)
		notification := v.notify(constvars.NotificationLevelError, message)
		return &notification, true
	}

	switch category {
	case models.CategoryHospital:
		for i := range hospitals {
			if hospitals[i].ID == "" {
				hospitals[i].ID = renderKey(category, i)
			}
		}
		v.hospitals = hospitals
		v.doctors = nil
	default:
		for i := range doctors {
			if doctors[i].ID == "" {
				doctors[i].ID = renderKey(category, i)
			}
		}
		v.doctors = doctors
		v.hospitals = nil
	}

	l.Log.Info("directory.Loader.settle load completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewIDKey, v.id),
		zap.String(constvars.LoggingCategoryKey, string(category)),
		zap.Int(constvars.LoggingRecordCountKey, len(doctors)+len(hospitals)),
	)
	return nil, true
}

func renderKey(category models.Category, index int) string {
	return fmt.Sprintf("%s-%d", category, index)
}

// loadFailureMessage classifies a failed load: an answer of 401 or 403 means
// the session is over, any other answer is a failed load and everything else
// never reached the collaborator.
func loadFailureMessage(ctx context.Context, category models.Category, err error) string {
	status := exceptions.UpstreamStatus(err)
	switch {
	case status == constvars.StatusUnauthorized || status == constvars.StatusForbidden:
		return constvars.NotifySessionExpired
	case status != 0:
		return fmt.Sprintf(constvars.NotifyLoadFailedFormat, category)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return constvars.NotifyCollaboratorUnreachable
	}
	return fmt.Sprintf(constvars.NotifyLoadFailedFormat, category)
}
