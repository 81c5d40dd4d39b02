package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Service-level error kinds. Controllers translate these to HTTP statuses
// with errors.Is; everything else surfaces as a 500.
var (
	// ErrReferenceNotFound means a customer, product or order reference did
	// not resolve. Nothing has been written when it is returned.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrInvalidArgument means the request payload is malformed beyond what
	// struct-tag validation covers (bad quantity, negative price, unknown
	// status). Rejected before any write.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict means a uniqueness or delete-protection rule was violated.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials means login failed. Deliberately does not say
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate detects unique-constraint violations across the supported
// drivers. GORM only translates these when TranslateError is enabled, so
// fall back to the driver messages.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
