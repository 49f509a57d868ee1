package repository

import (
	"github.com/linskybing/records-go/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	// ListByRecord returns comments newest first, each joined with the
	// author's name and primary-group name (both nullable).
	ListByRecord(recordID string) ([]comment.Row, error)
	CreateComment(cm *comment.RecordComment) error
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{
		db: db,
	}
}

func (r *DBCommentRepo) ListByRecord(recordID string) ([]comment.Row, error) {
	var rows []comment.Row
	err := r.db.Table("record_comment rc").
		Select(`
			rc.comment_id, rc.value, rc.created_by, rc.created_at,
			u.name AS user_name,
			g.name AS group_name
		`).
		Joins("LEFT JOIN users u ON rc.created_by = u.user_id").
		Joins("LEFT JOIN group_member gm ON u.user_id = gm.user_id AND gm.is_primary = ?", true).
		Joins("LEFT JOIN group_list g ON gm.group_id = g.group_id").
		Where("rc.linked_record_id = ?", recordID).
		Order("rc.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBCommentRepo) CreateComment(cm *comment.RecordComment) error {
	return r.db.Create(cm).Error
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{
		db: tx,
	}
}
