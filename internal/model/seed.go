package model

import (
	"context"
	"errors"
	"fmt"
	"safetytips/internal/auth"
	"safetytips/internal/config"
	"safetytips/internal/entity"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDefaultAdmin makes sure the bootstrap administrator exists. An existing
// account with that username is left untouched, whatever its password or role.
func SeedDefaultAdmin(ctx context.Context, repo Repository, hasher auth.Hasher, cfg config.Config) (bool, error) {
	if repo == nil {
		return false, nil
	}
	if hasher == nil {
		return false, fmt.Errorf("password hasher is nil")
	}

	username := strings.TrimSpace(cfg.AdminUsername)
	if username == "" || cfg.AdminPassword == "" {
		return false, fmt.Errorf("admin credential is not configured")
	}

	_, err := repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return false, err
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return false, err
	}
	admin := entity.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := repo.CreateUser(ctx, &admin); err != nil {
		// Lost a race with another process seeding the same store.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	logrus.WithField("username", username).Info("seeded default administrator")
	return true, nil
}

// SeedDefaultTips loads the stock catalogue into an empty tips table. It
// returns how many tips were inserted; a non-empty table is left alone.
func SeedDefaultTips(ctx context.Context, repo Repository) (int, error) {
	return seedTips(ctx, repo, defaultTips)
}

// DefaultTips returns a copy of the stock catalogue.
func DefaultTips() []entity.Tip {
	out := make([]entity.Tip, len(defaultTips))
	copy(out, defaultTips)
	return out
}

func seedTips(ctx context.Context, repo Repository, tips []entity.Tip) (int, error) {
	if repo == nil || len(tips) == 0 {
		return 0, nil
	}

	count, err := repo.CountTips(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logrus.WithField("existing", count).Debug("tips table not empty, skipping seed")
		return 0, nil
	}

	batch := make([]entity.Tip, len(tips))
	copy(batch, tips)
	if err := repo.CreateTips(ctx, batch); err != nil {
		return 0, err
	}

	logrus.WithField("count", len(batch)).Info("seeded default safety tips")
	return len(batch), nil
}
