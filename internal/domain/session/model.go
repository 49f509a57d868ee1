package session

import "time"

// Session maps an opaque credential value to a user. Value carries a unique
// index; resolution still requires exactly one match, anything else fails
// authentication.
type Session struct {
	ID           uint      `gorm:"primaryKey"`
	Value        string    `gorm:"size:255;not null;uniqueIndex"`
	LinkedUserID uint      `gorm:"column:linked_user_id;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Session) TableName() string {
	return "session"
}
