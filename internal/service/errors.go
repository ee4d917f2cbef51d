package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrStore              = errors.New("store failure")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("administrator privileges required")
	ErrLoggedOut          = errors.New("session is logged out")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// storeFailure logs the raw storage error and returns a generic ErrStore so
// driver details stay inside this package.
func storeFailure(err error, op string, fields logrus.Fields) error {
	entry := logrus.WithError(err).WithField("op", op)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error("store operation failed")
	return fmt.Errorf("%w: %s", ErrStore, op)
}

// isKnown reports whether err already belongs to the service error set.
func isKnown(err error) bool {
	for _, target := range []error{
		ErrDuplicateUsername,
		ErrNotFound,
		ErrValidation,
		ErrStore,
		ErrInvalidCredentials,
		ErrForbidden,
		ErrLoggedOut,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
