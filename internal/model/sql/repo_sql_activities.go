package sql

import (
	"context"
	"fmt"
	"safetytips/internal/entity"
)

// CreateActivity appends an activity row.
func (r *GormRepository) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if activity == nil {
		return fmt.Errorf("activity is nil")
	}
	if activity.UserID == 0 {
		return fmt.Errorf("invalid user id")
	}
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListActivities returns every activity joined with the acting username,
// newest first.
func (r *GormRepository) ListActivities(ctx context.Context) ([]entity.ActivityEntry, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	entries := make([]entity.ActivityEntry, 0)
	err := r.db.WithContext(ctx).
		Table("activities").
		Select("activities.id, activities.user_id, users.username, activities.activity, activities.timestamp").
		Joins("JOIN users ON users.id = activities.user_id").
		Order("activities.timestamp DESC, activities.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
