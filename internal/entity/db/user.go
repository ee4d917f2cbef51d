package db

import "time"

// User 表示一个可登录的账户。用户名区分大小写且唯一。
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(255);uniqueIndex:idx_users_username;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName 指定表名。
func (User) TableName() string {
	return "users"
}
