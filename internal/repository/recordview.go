package repository

import (
	"github.com/linskybing/records-go/internal/domain/group"
	"github.com/linskybing/records-go/internal/domain/record"
	"gorm.io/gorm"
)

// RecordViewRepo serves the paginated list views. The page query joins the
// page of records against users, groups, attachments, comments and the
// caller's last-access rows in a single grouped statement, so a page of N
// records costs one round-trip, not N.
type RecordViewRepo interface {
	CountRecords(status, scope string, userID uint) (int64, error)
	ListRecords(status, scope string, userID uint, limit, offset int) ([]record.ListRow, error)
	WithTx(tx *gorm.DB) RecordViewRepo
}

type DBRecordViewRepo struct {
	db *gorm.DB
}

func NewRecordViewRepo(db *gorm.DB) *DBRecordViewRepo {
	return &DBRecordViewRepo{
		db: db,
	}
}

// filtered builds the shared predicate: status match plus the scope
// restriction. The "tome" scope is a nested membership test: the record's
// (category, application group) pair must be authorized for at least one
// group the user belongs to.
func (r *DBRecordViewRepo) filtered(status, scope string, userID uint) *gorm.DB {
	q := r.db.Model(&record.Record{}).Where("status = ?", status)

	switch scope {
	case record.ScopeMine:
		q = q.Where("created_by = ?", userID)
	case record.ScopeTome:
		memberGroups := r.db.Model(&group.GroupMember{}).
			Select("group_id").
			Where("user_id = ?", userID)
		pairs := r.db.Model(&group.CategoryGroup{}).
			Select("category_id, application_group").
			Where("group_id IN (?)", memberGroups)
		q = q.Where("(category_id, application_group) IN (?)", pairs)
	}
	return q
}

func (r *DBRecordViewRepo) CountRecords(status, scope string, userID uint) (int64, error) {
	var count int64
	err := r.filtered(status, scope, userID).Count(&count).Error
	return count, err
}

func (r *DBRecordViewRepo) ListRecords(status, scope string, userID uint, limit, offset int) ([]record.ListRow, error) {
	page := r.filtered(status, scope, userID).
		Select("*").
		Order("updated_at DESC, record_id ASC").
		Limit(limit).
		Offset(offset)

	var rows []record.ListRow
	err := r.db.Table("(?) AS r", page).
		Select(`
			r.record_id, r.title, r.application_group, r.created_by,
			r.created_at, r.updated_at,
			MIN(u.name)        AS user_name,
			MIN(g.name)        AS group_name,
			MIN(rif.item_id)   AS thumb_item_id,
			MIN(rla.access_time) AS access_time,
			COUNT(DISTINCT rc.comment_id) AS comment_count
		`).
		Joins("LEFT JOIN users u ON r.created_by = u.user_id").
		Joins("LEFT JOIN group_list g ON r.application_group = g.group_id").
		Joins("LEFT JOIN record_last_access rla ON r.record_id = rla.record_id AND rla.user_id = ?", userID).
		Joins("LEFT JOIN record_item_file rif ON r.record_id = rif.linked_record_id").
		Joins("LEFT JOIN record_comment rc ON r.record_id = rc.linked_record_id").
		Group("r.record_id, r.title, r.application_group, r.created_by, r.created_at, r.updated_at").
		Order("r.updated_at DESC, r.record_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBRecordViewRepo) WithTx(tx *gorm.DB) RecordViewRepo {
	if tx == nil {
		return r
	}
	return &DBRecordViewRepo{
		db: tx,
	}
}
