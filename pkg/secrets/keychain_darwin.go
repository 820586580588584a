//go:build darwin

package secrets

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// KeychainSecretStore stores entries as generic passwords in the macOS
// Keychain. Status codes from the Security framework are passed through.
type KeychainSecretStore struct {
	Service string
}

func NewKeychainSecretStore(service string) *KeychainSecretStore {
	return &KeychainSecretStore{Service: service}
}

// NewSystemBackend returns the Keychain on darwin.
func NewSystemBackend(service string) Backend {
	return NewKeychainSecretStore(service)
}

// keychainAccessible fails with StatusParam for policies the platform's
// keychain does not define.
func keychainAccessible(a Accessibility) (gokeychain.Accessible, error) {
	switch a.Resolve() {
	case AccessibleWhenUnlocked:
		return gokeychain.AccessibleWhenUnlocked, nil
	case AccessibleAfterFirstUnlock:
		return gokeychain.AccessibleAfterFirstUnlock, nil
	case AccessibleWhenUnlockedThisDeviceOnly:
		return gokeychain.AccessibleWhenUnlockedThisDeviceOnly, nil
	case AccessibleAfterFirstUnlockThisDeviceOnly:
		return gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly, nil
	case AccessibleWhenPasscodeSetThisDeviceOnly:
		if passcodePolicySupported {
			return gokeychain.AccessibleWhenPasscodeSetThisDeviceOnly, nil
		}
	}
	return gokeychain.AccessibleDefault, &StatusError{
		Status:  StatusParam,
		Message: fmt.Sprintf("accessibility %s is not supported by this keychain", a),
	}
}

func (k *KeychainSecretStore) item(q Query) (gokeychain.Item, error) {
	access, err := keychainAccessible(q.Accessibility)
	if err != nil {
		return gokeychain.Item{}, err
	}
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(k.Service)
	item.SetAccount(q.Account)
	item.SetAccessible(access)
	if q.AccessGroup != "" {
		item.SetAccessGroup(q.AccessGroup)
	}
	return item, nil
}

func keychainStatus(err error) error {
	if err == nil {
		return nil
	}
	var kerr gokeychain.Error
	if errors.As(err, &kerr) {
		return &StatusError{Status: Status(kerr), Message: kerr.Error()}
	}
	return &StatusError{Status: StatusNotAvailable, Message: err.Error()}
}

// queryStatus is keychainStatus for reads: an error that is not a keychain
// status means the result could not be read back as data.
func queryStatus(err error) error {
	var kerr gokeychain.Error
	if err == nil || errors.As(err, &kerr) {
		return keychainStatus(err)
	}
	return fmt.Errorf("%w: %v", ErrUnexpectedValue, err)
}

func (k *KeychainSecretStore) Insert(it Item) error {
	item, err := k.item(it.Query)
	if err != nil {
		return err
	}
	item.SetLabel(it.Account)
	item.SetData(it.Data)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	return keychainStatus(gokeychain.AddItem(item))
}

func (k *KeychainSecretStore) Query(q Query) ([]byte, error) {
	item, err := k.item(q)
	if err != nil {
		return nil, err
	}
	item.SetMatchLimit(gokeychain.MatchLimitOne)
	item.SetReturnData(true)
	results, err := gokeychain.QueryItem(item)
	if err != nil {
		return nil, queryStatus(err)
	}
	if len(results) == 0 {
		return nil, NewStatusError(StatusItemNotFound)
	}
	if results[0].Data == nil {
		return []byte{}, nil
	}
	return results[0].Data, nil
}

func (k *KeychainSecretStore) Update(q Query, data []byte) error {
	item, err := k.item(q)
	if err != nil {
		return err
	}
	update := gokeychain.NewItem()
	update.SetData(data)
	return keychainStatus(gokeychain.UpdateItem(item, update))
}

func (k *KeychainSecretStore) Delete(q Query) error {
	item, err := k.item(q)
	if err != nil {
		return err
	}
	return keychainStatus(gokeychain.DeleteItem(item))
}

// DeleteAll removes every generic password of this store's service.
func (k *KeychainSecretStore) DeleteAll() error {
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(k.Service)
	return keychainStatus(gokeychain.DeleteItem(item))
}
