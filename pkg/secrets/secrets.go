// Package secrets is the boundary to the platform credential store.
//
// A Backend exposes the four primitives of a generic-password keychain
// (insert, query, update, delete) plus removal of every entry in the
// backend's service. Failures are reported as *StatusError carrying the
// backend's numeric status.
package secrets

import "errors"

// ErrUnexpectedValue is returned by Query when the stored payload exists
// but cannot be turned back into bytes.
var ErrUnexpectedValue = errors.New("unexpected stored value")

// Query identifies a single entry.
// An empty AccessGroup means the access group attribute is not set.
type Query struct {
	Account       string
	AccessGroup   string
	Accessibility Accessibility
}

// Item is an entry to insert.
type Item struct {
	Query
	Data []byte
}

type Backend interface {
	Insert(item Item) error
	Query(q Query) ([]byte, error)
	Update(q Query, data []byte) error
	Delete(q Query) error
	DeleteAll() error
}
