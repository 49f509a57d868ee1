package repository

import (
	"time"

	"github.com/linskybing/records-go/internal/domain/record"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordRepo interface {
	CreateRecord(rec *record.Record) error
	CreateItems(items []record.RecordItemFile) error
	GetDetail(recordID string) (record.DetailRow, error)
	ListItems(recordID string) ([]record.ItemRow, error)
	// UpdateStatus writes the status column only. No row-existence check:
	// updating an unknown id is a silent no-op.
	UpdateStatus(recordID, status string) error
	TouchUpdatedAt(recordID string, t time.Time) error
	UpsertLastAccess(recordID string, userID uint, t time.Time) error
	WithTx(tx *gorm.DB) RecordRepo
}

type DBRecordRepo struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) *DBRecordRepo {
	return &DBRecordRepo{
		db: db,
	}
}

func (r *DBRecordRepo) CreateRecord(rec *record.Record) error {
	return r.db.Create(rec).Error
}

func (r *DBRecordRepo) CreateItems(items []record.RecordItemFile) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *DBRecordRepo) GetDetail(recordID string) (record.DetailRow, error) {
	var row record.DetailRow
	err := r.db.Table("record r").
		Select(`
			r.record_id, r.status, r.title, r.detail, r.category_id,
			r.application_group, r.created_by, r.created_at,
			u.name  AS created_by_name,
			pg.name AS primary_group_name,
			ag.name AS application_group_name
		`).
		Joins("LEFT JOIN users u ON r.created_by = u.user_id").
		Joins("LEFT JOIN group_member gm ON r.created_by = gm.user_id AND gm.is_primary = ?", true).
		Joins("LEFT JOIN group_list pg ON gm.group_id = pg.group_id").
		Joins("LEFT JOIN group_list ag ON r.application_group = ag.group_id").
		Where("r.record_id = ?", recordID).
		Take(&row).Error
	return row, err
}

func (r *DBRecordRepo) ListItems(recordID string) ([]record.ItemRow, error) {
	var rows []record.ItemRow
	err := r.db.Table("record_item_file rif").
		Select("rif.item_id, f.name").
		Joins("INNER JOIN file f ON rif.linked_file_id = f.file_id").
		Where("rif.linked_record_id = ?", recordID).
		Order("rif.item_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBRecordRepo) UpdateStatus(recordID, status string) error {
	return r.db.Model(&record.Record{}).
		Where("record_id = ?", recordID).
		UpdateColumn("status", status).Error
}

func (r *DBRecordRepo) TouchUpdatedAt(recordID string, t time.Time) error {
	return r.db.Model(&record.Record{}).
		Where("record_id = ?", recordID).
		UpdateColumn("updated_at", t).Error
}

func (r *DBRecordRepo) UpsertLastAccess(recordID string, userID uint, t time.Time) error {
	access := record.RecordLastAccess{
		RecordID:   recordID,
		UserID:     userID,
		AccessTime: t,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"access_time": t}),
	}).Create(&access).Error
}

func (r *DBRecordRepo) WithTx(tx *gorm.DB) RecordRepo {
	if tx == nil {
		return r
	}
	return &DBRecordRepo{
		db: tx,
	}
}
