package service

import (
	"context"
	"errors"
	"safetytips/internal/entity"
	"safetytips/internal/model"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Catalogue manages safety tips.
type Catalogue struct {
	repo    model.Repository
	timeout time.Duration
}

// NewCatalogue creates the tip catalogue.
func NewCatalogue(repo model.Repository, timeout time.Duration) *Catalogue {
	return &Catalogue{repo: repo, timeout: timeout}
}

// Add stores a tip. Title and content are trimmed and must not be blank.
func (c *Catalogue) Add(ctx context.Context, title, content string) (*entity.Tip, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.add(ctx, c.repo, title, content)
}

func (c *Catalogue) add(ctx context.Context, repo model.Repository, title, content string) (*entity.Tip, error) {
	title, content, err := normaliseTip(title, content)
	if err != nil {
		return nil, err
	}

	tip := &entity.Tip{Title: title, Content: content}
	if err := repo.CreateTip(ctx, tip); err != nil {
		return nil, storeFailure(err, "create tip", logrus.Fields{"title": title})
	}
	return tip, nil
}

// Update replaces a tip's title and content. A missing tip reports false.
func (c *Catalogue) Update(ctx context.Context, id uint, title, content string) (bool, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.update(ctx, c.repo, id, title, content)
}

func (c *Catalogue) update(ctx context.Context, repo model.Repository, id uint, title, content string) (bool, error) {
	title, content, err := normaliseTip(title, content)
	if err != nil {
		return false, err
	}
	if id == 0 {
		return false, nil
	}

	err = repo.UpdateTip(ctx, id, entity.TipUpdates{Title: &title, Content: &content})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeFailure(err, "update tip", logrus.Fields{"tip_id": id})
	}
	return true, nil
}

// Remove deletes a tip and reports whether it existed.
func (c *Catalogue) Remove(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.remove(ctx, c.repo, id)
}

func (c *Catalogue) remove(ctx context.Context, repo model.Repository, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	if err := repo.DeleteTip(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeFailure(err, "delete tip", logrus.Fields{"tip_id": id})
	}
	return true, nil
}

// Get loads one tip or returns ErrNotFound.
func (c *Catalogue) Get(ctx context.Context, id uint) (*entity.Tip, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return getTip(ctx, c.repo, id)
}

func getTip(ctx context.Context, repo model.Repository, id uint) (*entity.Tip, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	tip, err := repo.GetTip(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFailure(err, "load tip", logrus.Fields{"tip_id": id})
	}
	return tip, nil
}

// Search returns tips whose title contains query, ignoring case, newest
// first. A nil or blank query returns the whole catalogue. No match is an
// empty slice, never nil.
func (c *Catalogue) Search(ctx context.Context, query *string) ([]entity.Tip, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	q := ""
	if query != nil {
		q = strings.TrimSpace(*query)
	}
	tips, err := c.repo.SearchTips(ctx, q)
	if err != nil {
		return nil, storeFailure(err, "search tips", logrus.Fields{"query": q})
	}
	if tips == nil {
		tips = []entity.Tip{}
	}
	return tips, nil
}

func normaliseTip(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", validationError("title and content cannot be empty")
	}
	return title, content, nil
}
