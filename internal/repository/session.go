package repository

import (
	"github.com/linskybing/records-go/internal/domain/session"
	"gorm.io/gorm"
)

type SessionRepo interface {
	// FindUserIDByValue resolves an opaque credential to a user id.
	// Anything other than exactly one matching row is a miss.
	FindUserIDByValue(value string) (uint, error)
	CreateSession(s *session.Session) error
	DeleteByValue(value string) error
	WithTx(tx *gorm.DB) SessionRepo
}

type DBSessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *DBSessionRepo {
	return &DBSessionRepo{
		db: db,
	}
}

func (r *DBSessionRepo) FindUserIDByValue(value string) (uint, error) {
	var rows []session.Session
	if err := r.db.Where("value = ?", value).Limit(2).Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) != 1 {
		return 0, gorm.ErrRecordNotFound
	}
	return rows[0].LinkedUserID, nil
}

func (r *DBSessionRepo) CreateSession(s *session.Session) error {
	return r.db.Create(s).Error
}

func (r *DBSessionRepo) DeleteByValue(value string) error {
	return r.db.Where("value = ?", value).Delete(&session.Session{}).Error
}

func (r *DBSessionRepo) WithTx(tx *gorm.DB) SessionRepo {
	if tx == nil {
		return r
	}
	return &DBSessionRepo{
		db: tx,
	}
}
