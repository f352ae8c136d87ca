package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/crewboard/crewboard-back/pkg/chat"
)

// CronManager owns the background schedules: refreshing the chat job
// context and sweeping expired cache and limiter entries.
type CronManager struct {
	cron    *cron.Cron
	chatSvc *chat.Service
	cache   *chat.TTLCache
	limiter *chat.VisitorLimiter
	logger  *log.Logger
}

// NewCronManager wires the scheduled jobs. Any dependency may be nil; the
// matching schedule is simply skipped.
func NewCronManager(chatSvc *chat.Service, cache *chat.TTLCache, limiter *chat.VisitorLimiter, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}
	return &CronManager{
		cron:    cron.New(),
		chatSvc: chatSvc,
		cache:   cache,
		limiter: limiter,
		logger:  logger,
	}
}

// Start registers the schedules and launches the cron loop.
func (m *CronManager) Start() error {
	if m.chatSvc != nil {
		if _, err := m.cron.AddFunc("*/10 * * * *", m.refreshJobContext); err != nil {
			return err
		}
	}
	if m.cache != nil || m.limiter != nil {
		if _, err := m.cron.AddFunc("*/5 * * * *", m.sweep); err != nil {
			return err
		}
	}

	m.cron.Start()
	m.logger.Printf("✅ Cron jobs started")
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (m *CronManager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Printf("🛑 Cron jobs stopped")
}

func (m *CronManager) refreshJobContext() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := m.chatSvc.RefreshJobContext(ctx); err != nil {
		m.logger.Printf("⚠️ Job context refresh failed: %v", err)
		return
	}
	m.logger.Printf("ℹ️ Chat job context refreshed")
}

func (m *CronManager) sweep() {
	if m.cache != nil {
		m.cache.Sweep()
	}
	if m.limiter != nil {
		m.limiter.Sweep()
	}
}
