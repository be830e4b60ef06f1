package directory

import (
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/exceptions"
	"sync"
	"time"
)

// Registry owns every live view of this instance.
type Registry struct {
	mu               sync.RWMutex
	views            map[string]*view
	maxNotifications int
	now              func() time.Time
}

func NewRegistry(maxNotifications int) *Registry {
	return &Registry{
		views:            make(map[string]*view),
		maxNotifications: maxNotifications,
		now:              time.Now,
	}
}

func (r *Registry) create(session *models.Session, category models.Category) *view {
	owner := ""
	if session.Authenticated() {
		owner = session.Subject
	}
	v := newView(owner, category, r.maxNotifications, r.now())

	r.mu.Lock()
	r.views[v.id] = v
	r.mu.Unlock()
	return v
}

// get returns the view and marks it as used. A view created by a signed in
// person is hidden from everybody else.
func (r *Registry) get(session *models.Session, viewID string) (*view, error) {
	r.mu.RLock()
	v, ok := r.views[viewID]
	r.mu.RUnlock()
	if !ok {
		return nil, exceptions.ErrViewNotFound(viewID)
	}
	if v.owner != "" && (!session.Authenticated() || session.Subject != v.owner) {
		return nil, exceptions.ErrViewNotFound(viewID)
	}

	v.mu.Lock()
	v.lastSeen = r.now()
	v.mu.Unlock()
	return v, nil
}

func (r *Registry) remove(viewID string) {
	r.mu.Lock()
	v, ok := r.views[viewID]
	delete(r.views, viewID)
	r.mu.Unlock()

	if ok {
		v.mu.Lock()
		v.dispose()
		v.mu.Unlock()
	}
}

// Sweep disposes views unused for longer than idle and reports how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.RLock()
	var stale []string
	for id, v := range r.views {
		v.mu.Lock()
		if v.lastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
		v.mu.Unlock()
	}
	r.mu.RUnlock()

	for _, id := range stale {
		r.remove(id)
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// Close disposes every view, cancelling their loads.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*view)
	r.mu.Unlock()

	for _, v := range views {
		v.mu.Lock()
		v.dispose()
		v.mu.Unlock()
	}
}
