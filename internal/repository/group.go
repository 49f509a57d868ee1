package repository

import (
	"github.com/linskybing/records-go/internal/domain/group"
	"gorm.io/gorm"
)

type GroupRepo interface {
	// GetPrimaryMembership returns the single membership flagged primary for
	// the user. Zero rows or more than one both fail: the organizational
	// scope of a new record cannot be resolved.
	GetPrimaryMembership(userID uint) (group.GroupMember, error)
	ListMemberGroupIDs(userID uint) ([]uint, error)
	WithTx(tx *gorm.DB) GroupRepo
}

type DBGroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *DBGroupRepo {
	return &DBGroupRepo{
		db: db,
	}
}

func (r *DBGroupRepo) GetPrimaryMembership(userID uint) (group.GroupMember, error) {
	var rows []group.GroupMember
	err := r.db.
		Where("user_id = ? AND is_primary = ?", userID, true).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return group.GroupMember{}, err
	}
	if len(rows) != 1 {
		return group.GroupMember{}, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *DBGroupRepo) ListMemberGroupIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&group.GroupMember{}).
		Select("group_id").
		Where("user_id = ?", userID).
		Scan(&ids).Error
	return ids, err
}

func (r *DBGroupRepo) WithTx(tx *gorm.DB) GroupRepo {
	if tx == nil {
		return r
	}
	return &DBGroupRepo{
		db: tx,
	}
}
