package comment

import "time"

// RecordComment is append-only; posting one bumps the parent record's
// updated_at inside the same transaction.
type RecordComment struct {
	CommentID      uint      `gorm:"primaryKey;column:comment_id"`
	LinkedRecordID string    `gorm:"column:linked_record_id;size:36;not null;index"`
	Value          string    `gorm:"type:text;not null"`
	CreatedBy      uint      `gorm:"column:created_by;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (RecordComment) TableName() string {
	return "record_comment"
}
