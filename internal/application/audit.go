package application

import (
	"encoding/json"

	"github.com/linskybing/records-go/internal/domain/audit"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(retentionDays int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(retentionDays)
}

// LogAsync persists an audit entry in the background. Audit failures are
// logged and swallowed; they must never fail the request that triggered
// them.
func (s *AuditService) LogAsync(userID uint, ip, userAgent, action, resourceType, resourceID string, before, after any) {
	go func() {
		entry := &audit.AuditLog{
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IP:           ip,
			UserAgent:    userAgent,
		}

		if before != nil {
			if data, err := json.Marshal(before); err == nil {
				entry.OldData = data
			} else {
				log.Warn().Err(err).Msg("audit: marshal old data")
			}
		}
		if after != nil {
			if data, err := json.Marshal(after); err == nil {
				entry.NewData = data
			} else {
				log.Warn().Err(err).Msg("audit: marshal new data")
			}
		}

		if err := s.Repos.Audit.CreateAuditLog(entry); err != nil {
			log.Error().Err(err).Str("action", action).Msg("audit: write failed")
		}
	}()
}
