package converter

import (
	"safetytips/internal/entity/db"
	"safetytips/internal/entity/dto"
)

// TipToItem converts a db.Tip to dto.TipItem.
func TipToItem(t *db.Tip) dto.TipItem {
	if t == nil {
		return dto.TipItem{}
	}
	return dto.TipItem{
		ID:        t.TipID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

// TipsToItems converts tips preserving order.
func TipsToItems(tips []db.Tip) []dto.TipItem {
	items := make([]dto.TipItem, len(tips))
	for i := range tips {
		items[i] = TipToItem(&tips[i])
	}
	return items
}
