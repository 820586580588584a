// Package credstore reads and writes typed secrets (strings, booleans and
// raw bytes) in a platform credential store.
//
// Every call maps to exactly one backend primitive. Calls on a Store are
// serialized: the access group is read and the backend is invoked under
// the same lock, so ConfigureAccessGroup never races an in-flight call.
package credstore

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/alapierre/credstore/pkg/logging"
	"github.com/alapierre/credstore/pkg/secrets"
	"github.com/sirupsen/logrus"
)

var logger = logging.Component("pkg/credstore")

type Accessibility = secrets.Accessibility

const (
	AccessibleDefault                        = secrets.AccessibleDefault
	AccessibleWhenUnlocked                   = secrets.AccessibleWhenUnlocked
	AccessibleAfterFirstUnlock               = secrets.AccessibleAfterFirstUnlock
	AccessibleWhenUnlockedThisDeviceOnly     = secrets.AccessibleWhenUnlockedThisDeviceOnly
	AccessibleAfterFirstUnlockThisDeviceOnly = secrets.AccessibleAfterFirstUnlockThisDeviceOnly
	AccessibleWhenPasscodeSetThisDeviceOnly  = secrets.AccessibleWhenPasscodeSetThisDeviceOnly
)

type Store struct {
	mu          sync.Mutex
	backend     secrets.Backend
	accessGroup string
}

func New(backend secrets.Backend) *Store {
	return &Store{backend: backend}
}

// ConfigureAccessGroup sets the access group used by every later call.
// The value is not validated; the backend rejects bad groups on use.
func (s *Store) ConfigureAccessGroup(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debugf("Access group set to %q", group)
	s.accessGroup = group
}

func (s *Store) AccessGroup() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessGroup
}

// query must be called with s.mu held.
func (s *Store) query(key string, access []Accessibility) secrets.Query {
	q := secrets.Query{Account: key, AccessGroup: s.accessGroup}
	if len(access) > 0 {
		q.Accessibility = access[0]
	}
	q.Accessibility = q.Accessibility.Resolve()
	return q
}

func fields(q secrets.Query) logrus.Fields {
	return logrus.Fields{
		"key":           q.Account,
		"accessGroup":   q.AccessGroup,
		"accessibility": q.Accessibility.String(),
	}
}

func encodeString(value string) ([]byte, error) {
	if !utf8.ValidString(value) {
		return nil, ErrInvalidData
	}
	return []byte(value), nil
}

func encodeBool(value bool) []byte {
	if value {
		return []byte{1}
	}
	return []byte{0}
}

func (s *Store) SetString(value, key string, access ...Accessibility) (bool, error) {
	data, err := encodeString(value)
	if err != nil {
		return false, fmt.Errorf("set %q: %w", key, err)
	}
	return s.SetBytes(data, key, access...)
}

func (s *Store) SetBool(value bool, key string, access ...Accessibility) (bool, error) {
	return s.SetBytes(encodeBool(value), key, access...)
}

// SetBytes inserts a new entry. It never overwrites: an existing entry in
// the same scope yields ErrDuplicateItem.
func (s *Store) SetBytes(value []byte, key string, access ...Accessibility) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.query(key, access)
	log := logger.WithFields(fields(q))
	if err := s.backend.Insert(secrets.Item{Query: q, Data: value}); err != nil {
		log.Debugf("Insert failed: %v", err)
		return false, fmt.Errorf("set %q: %w", key, statusError(err))
	}
	log.Debug("Inserted entry")
	return true, nil
}

// GetString returns ErrNullValue when nothing is stored for key.
func (s *Store) GetString(key string, access ...Accessibility) (string, error) {
	data, found, err := s.GetBytes(key, access...)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("get %q: %w", key, ErrNullValue)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("get %q: %w", key, ErrInvalidData)
	}
	return string(data), nil
}

// GetBool returns ErrNullValue when nothing is stored for key or the
// stored value is empty. Only a leading byte of 1 reads as true.
func (s *Store) GetBool(key string, access ...Accessibility) (bool, error) {
	data, found, err := s.GetBytes(key, access...)
	if err != nil {
		return false, err
	}
	if !found || len(data) == 0 {
		return false, fmt.Errorf("get %q: %w", key, ErrNullValue)
	}
	return data[0] == 1, nil
}

// GetBytes reports found=false with a nil error when nothing is stored for
// key. Unlike the typed getters this is not an error.
func (s *Store) GetBytes(key string, access ...Accessibility) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.query(key, access)
	log := logger.WithFields(fields(q))
	data, err := s.backend.Query(q)
	if secrets.IsStatus(err, secrets.StatusItemNotFound) {
		log.Debug("No entry found")
		return nil, false, nil
	}
	if err != nil {
		log.Debugf("Query failed: %v", err)
		return nil, false, fmt.Errorf("get %q: %w", key, statusError(err))
	}
	log.Debug("Read entry")
	return data, true, nil
}

func (s *Store) UpdateString(value, key string, access ...Accessibility) (bool, error) {
	data, err := encodeString(value)
	if err != nil {
		return false, fmt.Errorf("update %q: %w", key, err)
	}
	return s.UpdateBytes(data, key, access...)
}

func (s *Store) UpdateBool(value bool, key string, access ...Accessibility) (bool, error) {
	return s.UpdateBytes(encodeBool(value), key, access...)
}

// UpdateBytes replaces the value of an existing entry. A missing entry is
// reported as a *StatusError; nothing is inserted.
func (s *Store) UpdateBytes(value []byte, key string, access ...Accessibility) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.query(key, access)
	log := logger.WithFields(fields(q))
	if err := s.backend.Update(q, value); err != nil {
		log.Debugf("Update failed: %v", err)
		return false, fmt.Errorf("update %q: %w", key, statusError(err))
	}
	log.Debug("Updated entry")
	return true, nil
}

// Delete removes the entry for key. Deleting a missing entry succeeds.
func (s *Store) Delete(key string, access ...Accessibility) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.query(key, access)
	log := logger.WithFields(fields(q))
	err := s.backend.Delete(q)
	if err != nil && !secrets.IsStatus(err, secrets.StatusItemNotFound) {
		log.Debugf("Delete failed: %v", err)
		return false, fmt.Errorf("delete %q: %w", key, statusError(err))
	}
	log.Debug("Deleted entry")
	return true, nil
}

// DeleteAll removes every entry of the backend regardless of access group.
func (s *Store) DeleteAll() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.backend.DeleteAll()
	if err != nil && !secrets.IsStatus(err, secrets.StatusItemNotFound) {
		logger.Debugf("Delete all failed: %v", err)
		return false, fmt.Errorf("delete all: %w", statusError(err))
	}
	logger.Debug("Deleted all entries")
	return true, nil
}
