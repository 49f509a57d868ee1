package cron

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/linskybing/records-go/internal/application"
)

const auditRetentionDays = 30

// StartCleanupTask prunes expired audit logs once at startup and then
// every 24 hours.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Info().Int("retention_days", auditRetentionDays).Msg("starting audit log cleanup task")

		if err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
			log.Error().Err(err).Msg("audit log cleanup failed")
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
				log.Error().Err(err).Msg("audit log cleanup failed")
			}
		}
	}()
}
