package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler は cron 式に従って定期ジョブを実行します。スケジュールは UTC かつ秒精度です。
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
	now  func() time.Time
}

// NewScheduler は Scheduler を生成します。
func NewScheduler(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		log: log.With("component", "scheduler"),
		now: time.Now,
	}
}

// RegisterExpiry は失効通知ジョブを schedule で登録します。
func (s *Scheduler) RegisterExpiry(ctx context.Context, schedule string, notifier *ExpiryNotifier) error {
	if _, err := s.cron.AddFunc(schedule, func() {
		if _, err := notifier.Run(ctx, s.now().UTC()); err != nil {
			s.log.ErrorContext(ctx, "deposit expiry job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register expiry job %q: %w", schedule, err)
	}
	return nil
}

// Start はスケジューラを起動します。
func (s *Scheduler) Start() {
	s.log.Info("starting scheduler", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop は新規実行を止め、実行中のジョブの終了を待ちます。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}
