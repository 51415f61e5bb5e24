package app

import (
	"context"
	"time"

	pkgcron "github.com/prayful/core/internal/pkg/cron"
	"go.uber.org/zap"
)

// registerCronJobs registers scheduled background jobs and starts the
// scheduler. The jobs stop when the app context is cancelled.
func (a *App) registerCronJobs(ctx context.Context) {
	cronLogger := a.logger.Named("CronService")

	a.sched.Register(pkgcron.Job{
		Name:        "purge_expired_prayer_cache",
		Description: "만료된 기도문 캐시 정리",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			if err := a.prayerSvc.PurgeExpiredCache(ctx); err != nil {
				cronLogger.Warn("기도문 캐시 정리 실패", zap.Error(err))
				return err
			}
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "reap_stale_prayer_sessions",
		Description: "응답 없는 기도 세션 종료",
		Interval:    time.Minute,
		Fn: func(ctx context.Context) error {
			if err := a.sessionSvc.ReapStale(ctx); err != nil {
				cronLogger.Warn("기도 세션 정리 실패", zap.Error(err))
				return err
			}
			return nil
		},
	})

	go a.sched.Start(ctx)
}
