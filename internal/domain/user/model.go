package user

import "time"

type User struct {
	UserID    uint      `gorm:"primaryKey;column:user_id"`
	Username  string    `gorm:"size:50;not null;unique"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
