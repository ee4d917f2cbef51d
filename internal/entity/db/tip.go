package db

import "time"

// Tip is a single safety tip in the catalogue. Titles are not unique.
type Tip struct {
	TipID     uint      `gorm:"column:tip_id;primaryKey" json:"tip_id"`
	Title     string    `gorm:"column:title;type:varchar(255);index:idx_tips_title;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName 指定表名
func (Tip) TableName() string {
	return "tips"
}
