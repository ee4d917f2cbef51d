package db

import "time"

// Activity is an append-only audit entry. Rows go away with their user.
type Activity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"column:user_id;index:idx_activities_user_id;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Activity  string    `gorm:"column:activity;type:text;not null" json:"activity"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

// TableName 指定表名
func (Activity) TableName() string {
	return "activities"
}

// ActivityEntry is an activity joined with the acting user's name at read time.
type ActivityEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}
