package directory

import (
	"context"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/directory"
	"directory-service/internal/pkg/dto/responses"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// view is one person's directory screen. Every field is guarded by mu and
// mu is never held across a network call.
type view struct {
	id    string
	owner string

	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	disposed   bool
	lastSeen   time.Time
	category   models.Category
	criteria   directory.Criteria
	page       int
	loadState  responses.LoadState
	generation uint64
	cancelLoad context.CancelFunc
	doctors    []models.Doctor
	hospitals  []models.Hospital
	presenter  presenter
	// sends numbers submissions across presenter resets
	sends uint64

	notifications    []models.Notification
	maxNotifications int
}

func newView(owner string, category models.Category, maxNotifications int, now time.Time) *view {
	ctx, cancel := context.WithCancel(context.Background())
	return &view{
		id:               uuid.NewString(),
		owner:            owner,
		ctx:              ctx,
		cancel:           cancel,
		lastSeen:         now,
		category:         category,
		page:             1,
		loadState:        responses.LoadStatePending,
		presenter:        presenter{state: PresenterClosed},
		maxNotifications: maxNotifications,
	}
}

// notify queues a notification for the next snapshot. Callers hold mu.
func (v *view) notify(level, message string) models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		ViewID:    v.id,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	v.notifications = append(v.notifications, notification)
	if v.maxNotifications > 0 && len(v.notifications) > v.maxNotifications {
		v.notifications = v.notifications[len(v.notifications)-v.maxNotifications:]
	}
	return notification
}

func (v *view) nextSend() uint64 {
	v.sends++
	return v.sends
}

// switchCategory clears filters, resets the page and closes the presenter.
// Callers hold mu and start a load afterwards.
func (v *view) switchCategory(category models.Category) {
	v.category = category
	v.criteria = directory.Criteria{}
	v.page = 1
	v.doctors = nil
	v.hospitals = nil
	v.presenter.reset()
}

func (v *view) setCriteria(criteria directory.Criteria) {
	v.criteria = criteria
	v.page = 1
}

func (v *view) filteredDoctors() []models.Doctor {
	return directory.Filter(v.doctors, v.criteria)
}

func (v *view) filteredHospitals() []models.Hospital {
	return directory.Filter(v.hospitals, v.criteria)
}

func (v *view) filteredCount() int {
	if v.category == models.CategoryHospital {
		return len(v.filteredHospitals())
	}
	return len(v.filteredDoctors())
}

func (v *view) setPage(page int) {
	v.page = directory.ClampPage(page, directory.TotalPages(v.filteredCount(), directory.PageSize))
}

func (v *view) findDoctor(recordID string) (models.Doctor, bool) {
	for _, doctor := range v.doctors {
		if doctor.ID == recordID {
			return doctor, true
		}
	}
	return models.Doctor{}, false
}

func (v *view) findHospital(recordID string) (models.Hospital, bool) {
	for _, hospital := range v.hospitals {
		if hospital.ID == recordID {
			return hospital, true
		}
	}
	return models.Hospital{}, false
}

// snapshot renders the view and drains queued notifications. Callers hold mu.
func (v *view) snapshot(now time.Time) *responses.ViewSnapshot {
	result := &responses.ViewSnapshot{
		ViewID:        v.id,
		Category:      v.category,
		LoadState:     v.loadState,
		Loading:       v.loadState == responses.LoadStateLoading,
		Filters:       v.criteria,
		FiltersActive: v.criteria.Active(),
		Presenter:     v.presenter.snapshot(now),
		Notifications: v.notifications,
	}
	if result.Notifications == nil {
		result.Notifications = []models.Notification{}
	}
	v.notifications = nil

	var total int
	switch v.category {
	case models.CategoryHospital:
		page := directory.Paginate(v.filteredHospitals(), v.page, directory.PageSize)
		result.Page = pageSnapshot(page.Number, page.Size, page.TotalItems, page.TotalPages, page.HasPrevious, page.HasNext)
		result.Page.Hospitals = page.Items
		total = page.TotalItems
	default:
		page := directory.Paginate(v.filteredDoctors(), v.page, directory.PageSize)
		result.Page = pageSnapshot(page.Number, page.Size, page.TotalItems, page.TotalPages, page.HasPrevious, page.HasNext)
		result.Page.Doctors = page.Items
		total = page.TotalItems
	}

	if v.loadState == responses.LoadStateCompleted && total == 0 {
		result.EmptyMessage = fmt.Sprintf(constvars.EmptyStateFormat, v.category)
	}
	return result
}

func pageSnapshot(number, size, totalItems, totalPages int, hasPrevious, hasNext bool) responses.PageSnapshot {
	return responses.PageSnapshot{
		Number:      number,
		Size:        size,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: hasPrevious,
		HasNext:     hasNext,
		Window:      directory.Window(number, totalPages),
	}
}

// dispose cancels any load in flight. Callers hold mu.
func (v *view) dispose() {
	v.disposed = true
	v.cancel()
}
