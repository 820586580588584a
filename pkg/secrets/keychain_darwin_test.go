//go:build darwin

package secrets

import (
	"errors"
	"testing"

	gokeychain "github.com/keybase/go-keychain"
)

func TestKeychainAccessible(t *testing.T) {
	cases := map[Accessibility]gokeychain.Accessible{
		AccessibleDefault:                        gokeychain.AccessibleWhenUnlocked,
		AccessibleWhenUnlocked:                   gokeychain.AccessibleWhenUnlocked,
		AccessibleAfterFirstUnlock:               gokeychain.AccessibleAfterFirstUnlock,
		AccessibleWhenUnlockedThisDeviceOnly:     gokeychain.AccessibleWhenUnlockedThisDeviceOnly,
		AccessibleAfterFirstUnlockThisDeviceOnly: gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly,
	}
	for a, want := range cases {
		got, err := keychainAccessible(a)
		if err != nil {
			t.Errorf("%s: unexpected error %v", a, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", a, got, want)
		}
	}
}

func TestKeychainAccessiblePasscodePolicy(t *testing.T) {
	_, err := keychainAccessible(AccessibleWhenPasscodeSetThisDeviceOnly)
	if passcodePolicySupported {
		if err != nil {
			t.Errorf("expected passcode policy to be accepted, got %v", err)
		}
		return
	}
	if !IsStatus(err, StatusParam) {
		t.Errorf("expected StatusParam, got %v", err)
	}
}

func TestKeychainItemRejectsUnsupportedPolicy(t *testing.T) {
	if passcodePolicySupported {
		t.Skip("passcode policy is supported on this platform")
	}
	ks := NewKeychainSecretStore("com.credstore.test")
	if _, err := ks.item(Query{Account: "k", Accessibility: AccessibleWhenPasscodeSetThisDeviceOnly}); !IsStatus(err, StatusParam) {
		t.Errorf("expected StatusParam, got %v", err)
	}
}

func TestQueryStatus(t *testing.T) {
	if err := queryStatus(errors.New("Invalid result type: CFString")); !errors.Is(err, ErrUnexpectedValue) {
		t.Errorf("expected ErrUnexpectedValue, got %v", err)
	}
	if err := queryStatus(gokeychain.ErrorItemNotFound); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("expected item not found status, got %v", err)
	}
	if err := queryStatus(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
