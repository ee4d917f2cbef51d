package dto

import "time"

// TipItem is a tip as shown to clients.
type TipItem struct {
	ID        uint      `json:"tip_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TipRequest creates or replaces a tip.
type TipRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// TipQuery filters the catalogue by title.
type TipQuery struct {
	Query string `form:"q" json:"q"`
}

// TipListResponse 安全提示列表
type TipListResponse struct {
	Tips []TipItem `json:"tips"`
}

// TipDetailResponse 单条安全提示
type TipDetailResponse struct {
	Tip TipItem `json:"tip"`
}
