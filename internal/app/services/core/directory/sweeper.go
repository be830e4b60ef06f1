package directory

import (
	"directory-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSweepSpec = "@every 1m"

// Sweeper periodically disposes idle views.
type Sweeper struct {
	log      *zap.Logger
	registry *Registry
	spec     string
	idle     time.Duration
	cron     *cron.Cron
}

func NewSweeper(log *zap.Logger, registry *Registry, spec string, idle time.Duration) *Sweeper {
	return &Sweeper{log: log, registry: registry, spec: spec, idle: idle}
}

func (s *Sweeper) Start() {
	c := cron.New()
	_, err := c.AddFunc(s.spec, s.runOnce)
	if err != nil {
		s.log.Warn("directory.Sweeper: failed to schedule with provided cron spec; falling back to default",
			zap.String("spec", s.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultSweepSpec, s.runOnce)
	}
	c.Start()
	s.cron = c
}

// Stop waits for a sweep in progress to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *Sweeper) runOnce() {
	evicted := s.registry.Sweep(s.idle)
	if evicted > 0 {
		s.log.Info("directory.Sweeper evicted idle views",
			zap.Int(constvars.LoggingIdleViewsEvictedKey, evicted),
			zap.Int("live_views", s.registry.Len()),
		)
	}
}
