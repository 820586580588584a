package secrets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/alapierre/credstore/pkg/logging"
	"github.com/zalando/go-keyring"
)

var logger = logging.Component("pkg/secrets")

// KeyringSecretStore stores entries in the OS keyring (Secret Service,
// Keychain, Windows Credential Manager) under a single service name.
//
// The keyring only knows service/user pairs, so accessibility and access
// group are folded into the user attribute, and values are base64 encoded
// because some providers only accept text.
type KeyringSecretStore struct {
	Service string
}

func NewKeyringSecretStore(service string) *KeyringSecretStore {
	return &KeyringSecretStore{Service: service}
}

func keyringAccount(q Query) string {
	return strings.Join([]string{
		q.Accessibility.String(),
		url.PathEscape(q.AccessGroup),
		url.PathEscape(q.Account),
	}, "/")
}

func keyringStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return NewStatusError(StatusItemNotFound)
	case errors.Is(err, keyring.ErrSetDataTooBig):
		return &StatusError{Status: StatusParam, Message: err.Error()}
	default:
		return &StatusError{Status: StatusNotAvailable, Message: err.Error()}
	}
}

// Insert fails with StatusDuplicateItem if the entry exists; keyring.Set
// alone would overwrite it.
func (k *KeyringSecretStore) Insert(item Item) error {
	user := keyringAccount(item.Query)
	_, err := keyring.Get(k.Service, user)
	if err == nil {
		return NewStatusError(StatusDuplicateItem)
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return keyringStatus(err)
	}
	return keyringStatus(keyring.Set(k.Service, user, base64.StdEncoding.EncodeToString(item.Data)))
}

func (k *KeyringSecretStore) Query(q Query) ([]byte, error) {
	raw, err := keyring.Get(k.Service, keyringAccount(q))
	if err != nil {
		return nil, keyringStatus(err)
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		logger.Debugf("Stored value for %s is not base64: %v", q.Account, err)
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedValue, err)
	}
	return data, nil
}

func (k *KeyringSecretStore) Update(q Query, data []byte) error {
	user := keyringAccount(q)
	if _, err := keyring.Get(k.Service, user); err != nil {
		return keyringStatus(err)
	}
	return keyringStatus(keyring.Set(k.Service, user, base64.StdEncoding.EncodeToString(data)))
}

func (k *KeyringSecretStore) Delete(q Query) error {
	return keyringStatus(keyring.Delete(k.Service, keyringAccount(q)))
}

func (k *KeyringSecretStore) DeleteAll() error {
	return keyringStatus(keyring.DeleteAll(k.Service))
}
