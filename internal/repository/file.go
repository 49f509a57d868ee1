package repository

import (
	"github.com/linskybing/records-go/internal/domain/file"
	"gorm.io/gorm"
)

type FileRepo interface {
	CreateFiles(files []file.File) error
	// GetItemFile resolves the original file of an attachment slot strictly
	// through the record_item_file join; a bare file id is never enough.
	GetItemFile(recordID string, itemID int) (file.File, error)
	// GetItemThumbnail resolves the thumbnail file of an attachment slot.
	GetItemThumbnail(recordID string, itemID int) (file.File, error)
	WithTx(tx *gorm.DB) FileRepo
}

type DBFileRepo struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) *DBFileRepo {
	return &DBFileRepo{
		db: db,
	}
}

func (r *DBFileRepo) CreateFiles(files []file.File) error {
	if len(files) == 0 {
		return nil
	}
	return r.db.Create(&files).Error
}

func (r *DBFileRepo) GetItemFile(recordID string, itemID int) (file.File, error) {
	return r.itemFile(recordID, itemID, "rif.linked_file_id")
}

func (r *DBFileRepo) GetItemThumbnail(recordID string, itemID int) (file.File, error) {
	return r.itemFile(recordID, itemID, "rif.linked_thumbnail_file_id")
}

func (r *DBFileRepo) itemFile(recordID string, itemID int, linkColumn string) (file.File, error) {
	var f file.File
	err := r.db.Table("record_item_file rif").
		Select("f.file_id, f.object_key, f.name").
		Joins("INNER JOIN file f ON "+linkColumn+" = f.file_id").
		Where("rif.linked_record_id = ? AND rif.item_id = ?", recordID, itemID).
		Take(&f).Error
	return f, err
}

func (r *DBFileRepo) WithTx(tx *gorm.DB) FileRepo {
	if tx == nil {
		return r
	}
	return &DBFileRepo{
		db: tx,
	}
}
