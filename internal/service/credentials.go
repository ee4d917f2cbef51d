package service

import (
	"context"
	"errors"
	"safetytips/internal/auth"
	"safetytips/internal/entity"
	"safetytips/internal/model"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Credentials 用户账户的注册、认证与维护
type Credentials struct {
	repo    model.Repository
	hasher  auth.Hasher
	timeout time.Duration
}

// NewCredentials creates the credential store.
func NewCredentials(repo model.Repository, hasher auth.Hasher, timeout time.Duration) *Credentials {
	return &Credentials{repo: repo, hasher: hasher, timeout: timeout}
}

// Register creates an account. Blank usernames or passwords are rejected and
// an existing username yields ErrDuplicateUsername with the stored row intact.
func (c *Credentials) Register(ctx context.Context, username, password string, isAdmin bool) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.register(ctx, c.repo, username, password, isAdmin)
}

func (c *Credentials) register(ctx context.Context, repo model.Repository, username, password string, isAdmin bool) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, validationError("password is required")
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		return nil, validationError("password could not be processed")
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, storeFailure(err, "create user", logrus.Fields{"username": username})
	}
	return user, nil
}

// Authenticate returns the user whose stored digest matches password, or
// nil when the username is unknown or the password is wrong. Accounts still
// on a legacy digest are upgraded in place.
func (c *Credentials) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil
	}
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeFailure(err, "load user", logrus.Fields{"username": username})
	}

	ok, err := c.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("stored password hash unusable")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	if c.hasher.NeedsRehash(user.PasswordHash) {
		c.rehash(ctx, user, password)
	}
	return user, nil
}

func (c *Credentials) rehash(ctx context.Context, user *entity.User, password string) {
	hash, err := c.hasher.Hash(password)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("password rehash failed")
		return
	}
	if err := c.repo.UpdateUser(ctx, user.ID, entity.UserUpdates{PasswordHash: &hash}); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to store upgraded password hash")
		return
	}
	user.PasswordHash = hash
	logrus.WithField("user_id", user.ID).Info("upgraded legacy password hash")
}

// Update applies the supplied changes. Nothing to change, or no such user,
// reports false without error.
func (c *Credentials) Update(ctx context.Context, id uint, changes entity.UserChanges) (bool, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.update(ctx, c.repo, id, changes)
}

func (c *Credentials) update(ctx context.Context, repo model.Repository, id uint, changes entity.UserChanges) (bool, error) {
	changes = changes.Normalised()
	if id == 0 || changes.IsEmpty() {
		return false, nil
	}

	var updates entity.UserUpdates
	if changes.HasUsername() {
		updates.Username = changes.Username
	}
	if changes.HasPassword() {
		if strings.TrimSpace(*changes.Password) == "" {
			return false, validationError("password must not be blank")
		}
		hash, err := c.hasher.Hash(*changes.Password)
		if err != nil {
			logrus.WithError(err).Error("failed to hash password")
			return false, validationError("password could not be processed")
		}
		updates.PasswordHash = &hash
	}
	updates.IsAdmin = changes.IsAdmin

	if err := repo.UpdateUser(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return false, nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return false, ErrDuplicateUsername
		default:
			return false, storeFailure(err, "update user", logrus.Fields{"user_id": id})
		}
	}
	return true, nil
}

// Remove deletes a user together with its activity history.
func (c *Credentials) Remove(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return c.remove(ctx, c.repo, id)
}

func (c *Credentials) remove(ctx context.Context, repo model.Repository, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	if err := repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeFailure(err, "delete user", logrus.Fields{"user_id": id})
	}
	return true, nil
}

// List returns every account, newest first, with digests left blank.
func (c *Credentials) List(ctx context.Context) ([]entity.User, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	users, err := c.repo.ListUsers(ctx)
	if err != nil {
		return nil, storeFailure(err, "list users", nil)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Get loads one account.
func (c *Credentials) Get(ctx context.Context, id uint) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	return getUser(ctx, c.repo, id)
}

func getUser(ctx context.Context, repo model.Repository, id uint) (*entity.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	user, err := repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFailure(err, "load user", logrus.Fields{"user_id": id})
	}
	return user, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
