package app

import (
	"context"
	"fmt"
	"time"

	"github.com/emeraldgate/core/internal/models"
	pkgcron "github.com/emeraldgate/core/internal/pkg/cron"
	sessionpkg "github.com/emeraldgate/core/internal/pkg/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "purge_sessions",
		Description: "remove expired and revoked sessions",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			removed, err := sessionpkg.PurgeExpired(db, time.Now())
			if err != nil {
				cronLogger.Warn("session purge failed", zap.Error(err))
				return err
			}
			cronLogger.Info(fmt.Sprintf("session purge done, removed %d rows", removed))
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "purge_soft_deleted",
		Description: "hard-delete rows soft-deleted more than 90 days ago",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -90)
			targets := []interface{}{
				&models.PostModel{},
				&models.ListingModel{},
				&models.AgentModel{},
				&models.PageModel{},
				&models.InquiryModel{},
				&models.TestimonialModel{},
			}
			var total int64
			for _, m := range targets {
				res := db.Unscoped().
					Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
					Delete(m)
				if res.Error != nil {
					cronLogger.Warn("soft-delete purge failed", zap.Error(res.Error))
					return res.Error
				}
				total += res.RowsAffected
			}
			cronLogger.Info(fmt.Sprintf("soft-delete purge done, removed %d rows", total))
			return nil
		},
	})
}
