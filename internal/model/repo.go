package model

import (
	"context"
	"safetytips/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *entity.User) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// 安全提示
	CreateTip(ctx context.Context, tip *entity.Tip) error
	CreateTips(ctx context.Context, tips []entity.Tip) error
	UpdateTip(ctx context.Context, id uint, updates entity.TipUpdates) error
	GetTip(ctx context.Context, id uint) (*entity.Tip, error)
	DeleteTip(ctx context.Context, id uint) error
	SearchTips(ctx context.Context, query string) ([]entity.Tip, error)
	CountTips(ctx context.Context) (int64, error)

	// 操作日志
	CreateActivity(ctx context.Context, activity *entity.Activity) error
	ListActivities(ctx context.Context) ([]entity.ActivityEntry, error)

	// Transaction runs fn against a repository bound to a single transaction.
	// Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
