package application

import (
	"time"

	"github.com/linskybing/records-go/internal/domain/comment"
	"github.com/linskybing/records-go/internal/repository"
)

type CommentService struct {
	Repos *repository.Repos
}

func NewCommentService(repos *repository.Repos) *CommentService {
	return &CommentService{
		Repos: repos,
	}
}

func (s *CommentService) List(recordID string) (comment.ListResponse, error) {
	rows, err := s.Repos.Comment.ListByRecord(recordID)
	if err != nil {
		return comment.ListResponse{}, err
	}

	items := make([]comment.CommentDTO, len(rows))
	for i, row := range rows {
		items[i] = comment.CommentDTO{
			CommentID:                 row.CommentID,
			Value:                     row.Value,
			CreatedBy:                 row.CreatedBy,
			CreatedByName:             row.UserName,
			CreatedByPrimaryGroupName: row.GroupName,
			CreatedAt:                 row.CreatedAt,
		}
	}
	return comment.ListResponse{Items: items}, nil
}

// Create appends a comment and bumps the parent record's updated_at in the
// same transaction, so the unread flag and the comment always move
// together.
func (s *CommentService) Create(userID uint, recordID, value string) error {
	now := time.Now()
	cm := comment.RecordComment{
		LinkedRecordID: recordID,
		Value:          value,
		CreatedBy:      userID,
		CreatedAt:      now,
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Comment.CreateComment(&cm); err != nil {
			return err
		}
		return tx.Record.TouchUpdatedAt(recordID, now)
	})
}
