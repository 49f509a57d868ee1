package application

import (
	"strconv"

	"github.com/linskybing/records-go/internal/config"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/repository"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
	fallbackMax   = 100
)

type RecordViewService struct {
	Repos *repository.Repos
}

func NewRecordViewService(repos *repository.Repos) *RecordViewService {
	return &RecordViewService{
		Repos: repos,
	}
}

// parseWindow turns the raw offset/limit query values into a pagination
// window. When either value is unparsable or out of range, both fall back
// to the defaults as a pair.
func parseWindow(offsetRaw, limitRaw string) (int, int) {
	maxLimit := config.MaxListLimit
	if maxLimit <= 0 {
		maxLimit = fallbackMax
	}

	offset, offsetErr := strconv.Atoi(offsetRaw)
	limit, limitErr := strconv.Atoi(limitRaw)
	if offsetErr != nil || limitErr != nil {
		return defaultOffset, defaultLimit
	}
	if offset < 0 || limit <= 0 || limit > maxLimit {
		return defaultOffset, defaultLimit
	}
	return offset, limit
}

// List produces one page of the record list for the given status/scope,
// with the count of the full (unpaginated) match set. Ordering is
// updated_at descending with record id as the tie-break, so pages stay
// stable across equal timestamps.
func (s *RecordViewService) List(userID uint, status, scope, offsetRaw, limitRaw string) (record.ListResponse, error) {
	offset, limit := parseWindow(offsetRaw, limitRaw)

	count, err := s.Repos.RecordView.CountRecords(status, scope, userID)
	if err != nil {
		return record.ListResponse{}, err
	}

	rows, err := s.Repos.RecordView.ListRecords(status, scope, userID, limit, offset)
	if err != nil {
		return record.ListResponse{}, err
	}

	items := make([]record.ListItemDTO, len(rows))
	for i, row := range rows {
		// Unread until the caller's last access catches up with updated_at;
		// an access at exactly updated_at counts as read.
		unconfirmed := row.AccessTime == nil || row.AccessTime.Before(row.UpdatedAt)

		items[i] = record.ListItemDTO{
			RecordID:             row.RecordID,
			Title:                row.Title,
			ApplicationGroup:     row.ApplicationGroup,
			ApplicationGroupName: row.GroupName,
			CreatedBy:            row.CreatedBy,
			CreatedByName:        row.UserName,
			CreatedAt:            row.CreatedAt,
			CommentCount:         row.CommentCount,
			IsUnConfirmed:        unconfirmed,
			ThumbNailItemID:      row.ThumbItemID,
			UpdatedAt:            row.UpdatedAt,
		}
	}

	return record.ListResponse{Count: count, Items: items}, nil
}
