package group

import "time"

type Group struct {
	GroupID   uint      `gorm:"primaryKey;column:group_id"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Group) TableName() string {
	return "group_list"
}

// GroupMember links a user to a group. At most one membership per user
// carries is_primary = true; that membership decides the organizational
// scope new records are filed under.
type GroupMember struct {
	UserID    uint      `gorm:"primaryKey;column:user_id"`
	GroupID   uint      `gorm:"primaryKey;column:group_id"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (GroupMember) TableName() string {
	return "group_member"
}

// CategoryGroup authorizes a group to see records filed under a
// (category, application group) pair. Only the "tome" list scope reads it.
type CategoryGroup struct {
	CategoryID       int  `gorm:"primaryKey;column:category_id"`
	ApplicationGroup uint `gorm:"primaryKey;column:application_group"`
	GroupID          uint `gorm:"primaryKey;column:group_id"`
}

func (CategoryGroup) TableName() string {
	return "category_group"
}
