package converter

import (
	"safetytips/internal/entity/db"
	"safetytips/internal/entity/dto"
)

// ActivitiesToItems converts joined activity rows preserving order.
func ActivitiesToItems(entries []db.ActivityEntry) []dto.ActivityItem {
	items := make([]dto.ActivityItem, len(entries))
	for i, e := range entries {
		items[i] = dto.ActivityItem{
			ID:        e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Activity:  e.Activity,
			Timestamp: e.Timestamp,
		}
	}
	return items
}
