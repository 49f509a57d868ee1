package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/records-go/internal/domain/category"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/repository"
	"gorm.io/gorm"
)

type RecordService struct {
	Repos *repository.Repos
}

func NewRecordService(repos *repository.Repos) *RecordService {
	return &RecordService{
		Repos: repos,
	}
}

// Create files a new record under the caller's primary group. The record
// row and its attachment slots are written in one transaction; a record
// without its items never becomes visible.
func (s *RecordService) Create(userID uint, input record.CreateRecordInput) (string, error) {
	membership, err := s.Repos.Group.GetPrimaryMembership(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoPrimaryGroup
		}
		return "", err
	}

	now := time.Now()
	newID := uuid.NewString()

	rec := record.Record{
		RecordID:         newID,
		Status:           record.StatusOpen,
		Title:            input.Title,
		Detail:           input.Detail,
		CategoryID:       input.CategoryID,
		ApplicationGroup: membership.GroupID,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	items := make([]record.RecordItemFile, len(input.FileIDList))
	for i, ref := range input.FileIDList {
		items[i] = record.RecordItemFile{
			LinkedRecordID:        newID,
			ItemID:                i + 1,
			LinkedFileID:          ref.FileID,
			LinkedThumbnailFileID: ref.ThumbFileID,
			CreatedAt:             now,
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Record.CreateRecord(&rec); err != nil {
			return err
		}
		return tx.Record.CreateItems(items)
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

// Get returns the flattened detail view and, as a side effect, marks the
// record as seen by this user. The last-access upsert is a pure timestamp
// bump; concurrent readers racing to it is harmless.
func (s *RecordService) Get(userID uint, recordID string) (record.DetailDTO, error) {
	row, err := s.Repos.Record.GetDetail(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return record.DetailDTO{}, ErrNotFound
		}
		return record.DetailDTO{}, err
	}

	items, err := s.Repos.Record.ListItems(recordID)
	if err != nil {
		return record.DetailDTO{}, err
	}

	dto := record.DetailDTO{
		RecordID:                  row.RecordID,
		Status:                    row.Status,
		Title:                     row.Title,
		Detail:                    row.Detail,
		CategoryID:                row.CategoryID,
		ApplicationGroup:          row.ApplicationGroup,
		ApplicationGroupName:      row.ApplicationGroupName,
		CreatedBy:                 row.CreatedBy,
		CreatedByName:             row.CreatedByName,
		CreatedByPrimaryGroupName: row.PrimaryGroupName,
		CreatedAt:                 row.CreatedAt,
		Files:                     make([]record.ItemFileDTO, 0, len(items)),
	}
	if name, ok := category.Name(row.CategoryID); ok {
		dto.CategoryName = &name
	}
	for _, item := range items {
		dto.Files = append(dto.Files, record.ItemFileDTO{ItemID: item.ItemID, Name: item.Name})
	}

	if err := s.Repos.Record.UpsertLastAccess(recordID, userID, time.Now()); err != nil {
		return record.DetailDTO{}, err
	}
	return dto, nil
}

// UpdateStatus overwrites the status with whatever the caller sent. The
// original contract is deliberately permissive: no enum validation, no
// existence check, updated_at untouched.
func (s *RecordService) UpdateStatus(recordID, status string) error {
	return s.Repos.Record.UpdateStatus(recordID, status)
}
