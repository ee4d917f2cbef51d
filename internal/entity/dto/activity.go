package dto

import "time"

// ActivityItem is one audit line joined with the acting username.
type ActivityItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityListResponse 操作日志列表
type ActivityListResponse struct {
	Activities []ActivityItem `json:"activities"`
}
