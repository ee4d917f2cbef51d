package service

import (
	"context"
	"errors"
	"safetytips/internal/entity"
	"safetytips/internal/model"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Session is the identity of one logged-in user. It starts logged in and
// moves to logged out exactly once.
type Session struct {
	svc *Service

	mu   sync.RWMutex
	user *entity.User
}

func newSession(svc *Service, user *entity.User) *Session {
	u := *user
	u.PasswordHash = ""
	return &Session{svc: svc, user: &u}
}

// User returns a copy of the current identity, or nil after logout.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether the session is still active.
func (s *Session) LoggedIn() bool {
	return s.User() != nil
}

// IsAdmin reports whether the active identity holds the administrator role.
func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin
}

// Logout records the event and ends the session. It always succeeds and
// does nothing on an already logged-out session.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.mu.Unlock()

	if user == nil {
		return
	}

	description := ActivityUserLoggedOut
	if user.IsAdmin {
		description = ActivityAdminLoggedOut
	}
	s.svc.Activities.Append(ctx, user.ID, description)
	logrus.WithField("user_id", user.ID).Info("user logged out")
}

// Admin returns the administrator capability set.
func (s *Session) Admin() (*AdminCapabilities, error) {
	u := s.User()
	if u == nil {
		return nil, ErrLoggedOut
	}
	if !u.IsAdmin {
		return nil, ErrForbidden
	}
	return &AdminCapabilities{session: s}, nil
}

// Standard returns the capability set every logged-in user has.
func (s *Session) Standard() (*StandardCapabilities, error) {
	if !s.LoggedIn() {
		return nil, ErrLoggedOut
	}
	return &StandardCapabilities{session: s}, nil
}

func (s *Session) actor() (*entity.User, error) {
	u := s.User()
	if u == nil {
		return nil, ErrLoggedOut
	}
	return u, nil
}

func (s *Session) adminActor() (*entity.User, error) {
	u, err := s.actor()
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin {
		return nil, ErrForbidden
	}
	return u, nil
}

func (s *Session) renamed(id uint, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && s.user.ID == id {
		s.user.Username = username
	}
}

// StandardCapabilities: tip search and read, own password change.
type StandardCapabilities struct {
	session *Session
}

func (c *StandardCapabilities) SearchTips(ctx context.Context, query *string) ([]entity.Tip, error) {
	if _, err := c.session.actor(); err != nil {
		return nil, err
	}
	return c.session.svc.Catalogue.Search(ctx, query)
}

func (c *StandardCapabilities) GetTip(ctx context.Context, id uint) (*entity.Tip, error) {
	if _, err := c.session.actor(); err != nil {
		return nil, err
	}
	return c.session.svc.Catalogue.Get(ctx, id)
}

// ChangePassword replaces the caller's own password.
func (c *StandardCapabilities) ChangePassword(ctx context.Context, password string) error {
	user, err := c.session.actor()
	if err != nil {
		return err
	}
	if strings.TrimSpace(password) == "" {
		return validationError("password is required")
	}

	svc := c.session.svc
	return svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		ok, err := svc.Credentials.update(ctx, repo, user.ID, entity.UserChanges{Password: &password})
		if err != nil {
			return 0, "", err
		}
		if !ok {
			return 0, "", ErrNotFound
		}
		return user.ID, ActivityPasswordUpdated, nil
	})
}

// AdminCapabilities: user and tip management plus the activity log.
type AdminCapabilities struct {
	session *Session
}

func (c *AdminCapabilities) ListUsers(ctx context.Context) ([]entity.User, error) {
	if _, err := c.session.adminActor(); err != nil {
		return nil, err
	}
	return c.session.svc.Credentials.List(ctx)
}

func (c *AdminCapabilities) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	if _, err := c.session.adminActor(); err != nil {
		return nil, err
	}
	user, err := c.session.svc.Credentials.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// CreateUser adds an account with the given role.
func (c *AdminCapabilities) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*entity.User, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return nil, err
	}

	svc := c.session.svc
	var created *entity.User
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		u, err := svc.Credentials.register(ctx, repo, username, password, isAdmin)
		if err != nil {
			return 0, "", err
		}
		created = u
		return admin.ID, addedUserMessage(u.Username), nil
	})
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""
	return created, nil
}

// UpdateUser edits another account. Administrators cannot change their own
// role.
func (c *AdminCapabilities) UpdateUser(ctx context.Context, id uint, changes entity.UserChanges) (bool, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return false, err
	}
	if id == admin.ID && changes.IsAdmin != nil {
		return false, ErrForbidden
	}
	changes = changes.Normalised()

	svc := c.session.svc
	var updated bool
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		ok, err := svc.Credentials.update(ctx, repo, id, changes)
		if err != nil || !ok {
			return 0, "", err
		}
		updated = true
		return admin.ID, updatedUserMessage(id, changes), nil
	})
	if err != nil {
		return false, err
	}
	if updated && changes.HasUsername() {
		c.session.renamed(id, *changes.Username)
	}
	return updated, nil
}

// RemoveUser deletes another account and its activity history.
func (c *AdminCapabilities) RemoveUser(ctx context.Context, id uint) (bool, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return false, err
	}
	if id == admin.ID {
		return false, ErrForbidden
	}

	svc := c.session.svc
	var removed bool
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		target, err := getUser(ctx, repo, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return 0, "", nil
			}
			return 0, "", err
		}
		ok, err := svc.Credentials.remove(ctx, repo, id)
		if err != nil || !ok {
			return 0, "", err
		}
		removed = true
		return admin.ID, removedUserMessage(target.Username), nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (c *AdminCapabilities) AddTip(ctx context.Context, title, content string) (*entity.Tip, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return nil, err
	}

	svc := c.session.svc
	var tip *entity.Tip
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		t, err := svc.Catalogue.add(ctx, repo, title, content)
		if err != nil {
			return 0, "", err
		}
		tip = t
		return admin.ID, addedTipMessage(t.Title), nil
	})
	if err != nil {
		return nil, err
	}
	return tip, nil
}

func (c *AdminCapabilities) UpdateTip(ctx context.Context, id uint, title, content string) (bool, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return false, err
	}

	svc := c.session.svc
	var updated bool
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		ok, err := svc.Catalogue.update(ctx, repo, id, title, content)
		if err != nil || !ok {
			return 0, "", err
		}
		updated = true
		return admin.ID, updatedTipMessage(id, strings.TrimSpace(title)), nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (c *AdminCapabilities) RemoveTip(ctx context.Context, id uint) (bool, error) {
	admin, err := c.session.adminActor()
	if err != nil {
		return false, err
	}

	svc := c.session.svc
	var removed bool
	err = svc.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		tip, err := getTip(ctx, repo, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return 0, "", nil
			}
			return 0, "", err
		}
		ok, err := svc.Catalogue.remove(ctx, repo, id)
		if err != nil || !ok {
			return 0, "", err
		}
		removed = true
		return admin.ID, deletedTipMessage(id, tip.Title), nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (c *AdminCapabilities) SearchTips(ctx context.Context, query *string) ([]entity.Tip, error) {
	if _, err := c.session.adminActor(); err != nil {
		return nil, err
	}
	return c.session.svc.Catalogue.Search(ctx, query)
}

func (c *AdminCapabilities) GetTip(ctx context.Context, id uint) (*entity.Tip, error) {
	if _, err := c.session.adminActor(); err != nil {
		return nil, err
	}
	return c.session.svc.Catalogue.Get(ctx, id)
}

func (c *AdminCapabilities) ListActivities(ctx context.Context) ([]entity.ActivityEntry, error) {
	if _, err := c.session.adminActor(); err != nil {
		return nil, err
	}
	return c.session.svc.Activities.List(ctx)
}
