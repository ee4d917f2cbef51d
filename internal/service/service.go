package service

import (
	"context"
	"errors"
	"safetytips/internal/auth"
	"safetytips/internal/config"
	"safetytips/internal/entity"
	"safetytips/internal/model"
	"time"

	"github.com/sirupsen/logrus"
)

// Options tune how the service talks to the store.
type Options struct {
	// Timeout bounds each store call. Zero disables the deadline.
	Timeout time.Duration
	// AuditAtomic commits a mutation and its activity entry together; an
	// append failure then rolls the mutation back.
	AuditAtomic bool
}

// OptionsFromConfig maps configuration onto Options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Timeout:     cfg.StoreTimeout(),
		AuditAtomic: cfg.AuditAtomic,
	}
}

// Service 汇总账户、提示与日志，并负责登录会话
type Service struct {
	repo model.Repository
	opts Options

	Credentials *Credentials
	Catalogue   *Catalogue
	Activities  *ActivityLog
}

// New wires the three stores over one repository.
func New(repo model.Repository, hasher auth.Hasher, opts Options) *Service {
	return &Service{
		repo:        repo,
		opts:        opts,
		Credentials: NewCredentials(repo, hasher, opts.Timeout),
		Catalogue:   NewCatalogue(repo, opts.Timeout),
		Activities:  NewActivityLog(repo, opts.Timeout),
	}
}

// Register creates a standard account for self sign-up and records it.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, error) {
	var user *entity.User
	err := s.audited(ctx, func(ctx context.Context, repo model.Repository) (uint, string, error) {
		u, err := s.Credentials.register(ctx, repo, username, password, false)
		if err != nil {
			return 0, "", err
		}
		user = u
		return u.ID, ActivityRegistered, nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithField("username", user.Username).Info("user registered")
	return user, nil
}

// Login authenticates and opens a session. A wrong username or password
// returns ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.Credentials.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logrus.WithField("username", username).Info("login rejected")
		return nil, ErrInvalidCredentials
	}

	s.Activities.Append(ctx, user.ID, ActivityLoggedIn)
	logrus.WithField("user_id", user.ID).WithField("admin", user.IsAdmin).Info("user logged in")
	return newSession(s, user), nil
}

// Resume rebuilds the session of an identity that was authenticated
// earlier. The user is re-read so role changes apply at once.
func (s *Service) Resume(ctx context.Context, userID uint) (*Session, error) {
	user, err := s.Credentials.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return newSession(s, user), nil
}

// mutation performs one change against repo and names the actor and
// activity to record for it. An empty description records nothing.
type mutation func(ctx context.Context, repo model.Repository) (actorID uint, description string, err error)

// audited runs fn and records its activity, either in one transaction or
// with a best-effort append afterwards.
func (s *Service) audited(ctx context.Context, fn mutation) error {
	ctx, cancel := withTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if !s.opts.AuditAtomic {
		actorID, description, err := fn(ctx, s.repo)
		if err != nil {
			return err
		}
		if description != "" {
			s.Activities.Append(ctx, actorID, description)
		}
		return nil
	}

	err := s.repo.Transaction(ctx, func(tx model.Repository) error {
		actorID, description, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		if description == "" {
			return nil
		}
		if err := appendActivity(ctx, tx, actorID, description); err != nil {
			return storeFailure(err, "append activity", logrus.Fields{"user_id": actorID, "activity": description})
		}
		return nil
	})
	if err != nil && !isKnown(err) {
		return storeFailure(err, "transaction", nil)
	}
	return err
}
