package secrets

import (
	"errors"
	"fmt"
)

// Status is a backend result code. Values follow the Security framework's
// OSStatus numbering so the keychain backend can pass codes through as is.
type Status int32

const (
	StatusSuccess               Status = 0
	StatusParam                 Status = -50
	StatusNotAvailable          Status = -25291
	StatusAuthFailed            Status = -25293
	StatusDuplicateItem         Status = -25299
	StatusItemNotFound          Status = -25300
	StatusInteractionNotAllowed Status = -25308
	StatusDecode                Status = -26275
)

var statusMessages = map[Status]string{
	StatusParam:                 "One or more parameters passed to a function were not valid.",
	StatusNotAvailable:          "No keychain is available.",
	StatusAuthFailed:            "The user name or passphrase you entered is not correct.",
	StatusDuplicateItem:         "The specified item already exists in the keychain.",
	StatusItemNotFound:          "The specified item could not be found in the keychain.",
	StatusInteractionNotAllowed: "User interaction is not allowed.",
	StatusDecode:                "Unable to decode the provided data.",
}

// StatusMessage returns the human readable text for a status, if one is known.
func StatusMessage(s Status) (string, bool) {
	msg, ok := statusMessages[s]
	return msg, ok
}

// StatusError is a non-success backend status.
// Message is empty when the backend had nothing to say about the status.
type StatusError struct {
	Status  Status
	Message string
}

// NewStatusError builds a StatusError using the known message for s.
func NewStatusError(s Status) *StatusError {
	msg, _ := StatusMessage(s)
	return &StatusError{Status: s, Message: msg}
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend status %d", e.Status)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, s Status) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == s
}
