// Package janitor evicts practice sessions that have been idle for too
// long, so abandoned sessions do not accumulate in memory.
package janitor

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Expirer is implemented by the practice service.
type Expirer interface {
	ExpireBefore(cutoff time.Time) int
}

type Janitor struct {
	scheduler *gocron.Scheduler
	expirer   Expirer
	ttl       time.Duration
	interval  time.Duration
	logger    *zap.Logger
}

func New(expirer Expirer, ttl, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		expirer:   expirer,
		ttl:       ttl,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the sweep and returns immediately.
func (j *Janitor) Start() {
	j.scheduler.Every(j.interval).Do(j.sweep)
	j.scheduler.StartAsync()
}

func (j *Janitor) Stop() {
	j.scheduler.Stop()
}

func (j *Janitor) sweep() {
	expired := j.expirer.ExpireBefore(time.Now().Add(-j.ttl))
	if expired > 0 {
		j.logger.Info("expired idle sessions", zap.Int("count", expired))
	}
}
