package secrets

import (
	"errors"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func newMockKeyring(t *testing.T) *KeyringSecretStore {
	t.Helper()
	keyring.MockInit()
	return NewKeyringSecretStore("credstore-test-" + t.Name())
}

func TestKeyringSecretStore_RoundTrip(t *testing.T) {
	ks := newMockKeyring(t)
	q := Query{Account: "api_key", AccessGroup: "team.shared"}

	if err := ks.Insert(Item{Query: q, Data: []byte{0, 1, 0xff}}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	got, err := ks.Query(q)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if string(got) != string([]byte{0, 1, 0xff}) {
		t.Errorf("Unexpected data %v", got)
	}

	if err := ks.Update(q, []byte("new")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ = ks.Query(q)
	if string(got) != "new" {
		t.Errorf("Expected new, got %s", got)
	}

	if err := ks.Delete(q); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := ks.Query(q); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Expected item not found, got %v", err)
	}
}

func TestKeyringSecretStore_InsertDuplicate(t *testing.T) {
	ks := newMockKeyring(t)
	item := Item{Query: Query{Account: "k"}, Data: []byte("one")}

	if err := ks.Insert(item); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	item.Data = []byte("two")
	if err := ks.Insert(item); !IsStatus(err, StatusDuplicateItem) {
		t.Fatalf("Expected duplicate item, got %v", err)
	}
	got, _ := ks.Query(item.Query)
	if string(got) != "one" {
		t.Errorf("Insert must not overwrite, got %s", got)
	}
}

func TestKeyringSecretStore_MissingEntry(t *testing.T) {
	ks := newMockKeyring(t)
	q := Query{Account: "nope"}

	if err := ks.Update(q, []byte("x")); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Update: expected item not found, got %v", err)
	}
	if err := ks.Delete(q); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Delete: expected item not found, got %v", err)
	}
}

func TestKeyringSecretStore_AccessGroupsAreSeparate(t *testing.T) {
	ks := newMockKeyring(t)
	if err := ks.Insert(Item{Query: Query{Account: "k", AccessGroup: "A"}, Data: []byte("a")}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := ks.Query(Query{Account: "k", AccessGroup: "B"}); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Expected item not found in other group, got %v", err)
	}
}

func TestKeyringSecretStore_UnexpectedValue(t *testing.T) {
	ks := newMockKeyring(t)
	q := Query{Account: "raw"}
	if err := keyring.Set(ks.Service, keyringAccount(q), "not base64!"); err != nil {
		t.Fatalf("keyring.Set failed: %v", err)
	}
	_, err := ks.Query(q)
	if !errors.Is(err, ErrUnexpectedValue) {
		t.Errorf("Expected ErrUnexpectedValue, got %v", err)
	}
}

func TestKeyringAccount_EscapesSeparators(t *testing.T) {
	a := keyringAccount(Query{Account: "a/b", AccessGroup: "g"})
	b := keyringAccount(Query{Account: "b", AccessGroup: "g/a"})
	if a == b {
		t.Fatalf("Expected distinct names, both %q", a)
	}
	if !strings.HasPrefix(a, "when-unlocked/") {
		t.Errorf("Expected default accessibility prefix, got %q", a)
	}
}

func TestKeyringStatus(t *testing.T) {
	if err := keyringStatus(keyring.ErrNotFound); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("ErrNotFound mapped to %v", err)
	}
	if err := keyringStatus(keyring.ErrSetDataTooBig); !IsStatus(err, StatusParam) {
		t.Errorf("ErrSetDataTooBig mapped to %v", err)
	}
	err := keyringStatus(errors.New("dbus is down"))
	var se *StatusError
	if !errors.As(err, &se) || se.Status != StatusNotAvailable || se.Message != "dbus is down" {
		t.Errorf("Unexpected mapping %v", err)
	}
}
