package credstore

import (
	"errors"

	"github.com/alapierre/credstore/pkg/secrets"
)

var (
	// ErrInvalidData means a value could not be encoded to or decoded from bytes.
	ErrInvalidData = errors.New("invalid data")
	// ErrDuplicateItem means an entry already exists for the key in this scope.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrNullValue is returned by the typed getters when no value is stored.
	ErrNullValue = errors.New("null value")
	// ErrBackendStatus matches every *StatusError under errors.Is.
	ErrBackendStatus = errors.New("backend status")
)

// StatusError is any other non-success status reported by the backend.
type StatusError struct {
	Status  secrets.Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "backend status error"
	}
	return "backend status error: " + e.Message
}

// HasMessage reports whether the backend supplied diagnostic text.
func (e *StatusError) HasMessage() bool {
	return e.Message != ""
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBackendStatus
}

func statusError(err error) error {
	var se *secrets.StatusError
	if errors.As(err, &se) {
		if se.Status == secrets.StatusDuplicateItem {
			return ErrDuplicateItem
		}
		return &StatusError{Status: se.Status, Message: se.Message}
	}
	if errors.Is(err, secrets.ErrUnexpectedValue) {
		return ErrInvalidData
	}
	return &StatusError{Status: secrets.StatusNotAvailable, Message: err.Error()}
}
