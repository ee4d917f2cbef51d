package service

import (
	"context"
	"fmt"
	"safetytips/internal/entity"
	"safetytips/internal/model"
	"time"

	"github.com/sirupsen/logrus"
)

// Activity descriptions recorded for session events.
const (
	ActivityLoggedIn        = "User logged in"
	ActivityUserLoggedOut   = "User logged out"
	ActivityAdminLoggedOut  = "Admin logged out"
	ActivityPasswordUpdated = "User updated password"
	ActivityRegistered      = "User registered"
)

// ActivityLog 操作日志，只追加
type ActivityLog struct {
	repo    model.Repository
	timeout time.Duration
}

// NewActivityLog creates the activity log.
func NewActivityLog(repo model.Repository, timeout time.Duration) *ActivityLog {
	return &ActivityLog{repo: repo, timeout: timeout}
}

// Append records description against userID. Failures are logged and
// reported as false; they never fail the operation being audited.
func (l *ActivityLog) Append(ctx context.Context, userID uint, description string) bool {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	if err := appendActivity(ctx, l.repo, userID, description); err != nil {
		logrus.WithError(err).
			WithField("user_id", userID).
			WithField("activity", description).
			Warn("failed to record activity")
		return false
	}
	return true
}

// List returns all activity, newest first, with the acting username as it
// is now.
func (l *ActivityLog) List(ctx context.Context) ([]entity.ActivityEntry, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	entries, err := l.repo.ListActivities(ctx)
	if err != nil {
		return nil, storeFailure(err, "list activities", nil)
	}
	if entries == nil {
		entries = []entity.ActivityEntry{}
	}
	return entries, nil
}

func appendActivity(ctx context.Context, repo model.Repository, userID uint, description string) error {
	return repo.CreateActivity(ctx, &entity.Activity{UserID: userID, Activity: description})
}

func addedUserMessage(username string) string {
	return "Added user: " + username
}

func removedUserMessage(username string) string {
	return "Removed user: " + username
}

func updatedUserMessage(id uint, changes entity.UserChanges) string {
	msg := fmt.Sprintf("Updated user ID: %d", id)
	if changes.HasUsername() {
		msg += fmt.Sprintf(" (Username changed to: %s)", *changes.Username)
	}
	if changes.HasPassword() {
		msg += " (Password updated)"
	}
	if changes.IsAdmin != nil {
		msg += fmt.Sprintf(" (Admin status set to: %t)", *changes.IsAdmin)
	}
	return msg
}

func addedTipMessage(title string) string {
	return fmt.Sprintf("Added safety tip: '%s'", title)
}

func updatedTipMessage(id uint, title string) string {
	return fmt.Sprintf("Updated safety tip ID: %d ('%s')", id, title)
}

func deletedTipMessage(id uint, title string) string {
	return fmt.Sprintf("Deleted safety tip: '%s' (ID: %d)", title, id)
}
