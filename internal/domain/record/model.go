package record

import "time"

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// List scopes.
const (
	ScopeAll  = "all"
	ScopeMine = "mine"
	ScopeTome = "tome"
)

// Record is the tracked ticket entity. Timestamps are written explicitly by
// the services: updated_at moves when a comment lands, never on a status
// change, so the gorm auto-update hooks stay off.
type Record struct {
	RecordID         string    `gorm:"primaryKey;column:record_id;size:36"`
	Status           string    `gorm:"size:20;not null"`
	Title            string    `gorm:"size:255;not null"`
	Detail           string    `gorm:"type:text"`
	CategoryID       int       `gorm:"column:category_id;not null"`
	ApplicationGroup uint      `gorm:"column:application_group;not null"`
	CreatedBy        uint      `gorm:"column:created_by;not null"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "record"
}

// RecordItemFile is an attachment slot: it binds a record to an uploaded
// file and its thumbnail under a per-record sequential item id. Rows are
// written once at record creation and never change.
type RecordItemFile struct {
	LinkedRecordID        string    `gorm:"primaryKey;column:linked_record_id;size:36"`
	ItemID                int       `gorm:"primaryKey;column:item_id"`
	LinkedFileID          string    `gorm:"column:linked_file_id;size:36;not null"`
	LinkedThumbnailFileID string    `gorm:"column:linked_thumbnail_file_id;size:36;not null"`
	CreatedAt             time.Time `gorm:"column:created_at"`
}

func (RecordItemFile) TableName() string {
	return "record_item_file"
}

// RecordLastAccess remembers when a user last opened a record. A record
// counts as unread until the access time catches up with updated_at.
type RecordLastAccess struct {
	RecordID   string    `gorm:"primaryKey;column:record_id;size:36"`
	UserID     uint      `gorm:"primaryKey;column:user_id"`
	AccessTime time.Time `gorm:"column:access_time;not null"`
}

func (RecordLastAccess) TableName() string {
	return "record_last_access"
}
