package cronjob

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/internal/auth/repository"
)

// Janitor sweeps expired reset tokens and lapsed sessions on a schedule,
// so stale auth state does not pile up in the snapshot store.
type Janitor struct {
	sessions *repository.SessionRepository
	tokens   *repository.TokenRepository
	logger   *zap.Logger
	c        *cron.Cron
}

func NewJanitor(sessions *repository.SessionRepository, tokens *repository.TokenRepository, logger *zap.Logger) *Janitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Janitor{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Start schedules an hourly sweep.
func (j *Janitor) Start() error {
	j.c = cron.New()

	_, err := j.c.AddFunc("@hourly", j.Sweep)
	if err != nil {
		j.logger.Error("failed to schedule janitor", zap.Error(err))
		return err
	}

	j.logger.Info("janitor started (hourly sweep)")
	j.c.Start()
	return nil
}

// Stop halts the schedule; an in-flight sweep runs to completion.
func (j *Janitor) Stop() {
	if j.c != nil {
		<-j.c.Stop().Done()
	}
}

// Sweep runs one pass immediately.
func (j *Janitor) Sweep() {
	now := time.Now()

	removed, err := j.tokens.Sweep(now)
	if err != nil {
		j.logger.Warn("token sweep failed", zap.Error(err))
	} else if removed > 0 {
		j.logger.Info("expired reset tokens removed", zap.Int("count", removed))
	}

	cleared, err := j.sessions.ClearIfExpired(now)
	if err != nil {
		j.logger.Warn("session sweep failed", zap.Error(err))
	} else if cleared {
		j.logger.Info("expired session cleared")
	}
}
