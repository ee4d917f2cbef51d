package sql

import (
	"context"
	"fmt"
	"safetytips/internal/entity"

	"gorm.io/gorm"
)

const tipBatchSize = 100

// CreateTip inserts a new tip.
func (r *GormRepository) CreateTip(ctx context.Context, tip *entity.Tip) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if tip == nil {
		return fmt.Errorf("tip is nil")
	}
	return r.db.WithContext(ctx).Create(tip).Error
}

// CreateTips inserts tips in batches inside one transaction.
func (r *GormRepository) CreateTips(ctx context.Context, tips []entity.Tip) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if len(tips) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&tips, tipBatchSize).Error
	})
}

// UpdateTip updates tip fields.
func (r *GormRepository) UpdateTip(ctx context.Context, id uint, updates entity.TipUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid tip id")
	}
	if updates.IsEmpty() {
		return fmt.Errorf("no updates provided")
	}

	result := r.db.WithContext(ctx).Model(&entity.Tip{}).Where("tip_id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTip loads a single tip.
func (r *GormRepository) GetTip(ctx context.Context, id uint) (*entity.Tip, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid tip id")
	}
	var tip entity.Tip
	if err := r.db.WithContext(ctx).Where("tip_id = ?", id).First(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// DeleteTip removes a tip by ID.
func (r *GormRepository) DeleteTip(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid tip id")
	}

	result := r.db.WithContext(ctx).Where("tip_id = ?", id).Delete(&entity.Tip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchTips returns tips whose title contains query, ignoring case, newest
// first. Both sides are lowercased by the database so they fold alike. LIKE wildcards in query are not escaped. An empty query lists all tips.
func (r *GormRepository) SearchTips(ctx context.Context, query string) ([]entity.Tip, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := r.db.WithContext(ctx).Model(&entity.Tip{})
	if query != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%")
	}

	tips := make([]entity.Tip, 0)
	if err := q.Order("created_at DESC, tip_id DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// CountTips returns the catalogue size.
func (r *GormRepository) CountTips(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Tip{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
