package secrets

import "testing"

func TestInMemorySecretStore(t *testing.T) {
	ss := NewInMemorySecretStore()
	q := Query{Account: "key"}

	if err := ss.Insert(Item{Query: q, Data: []byte("val")}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	val, err := ss.Query(q)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if string(val) != "val" {
		t.Errorf("Expected val, got %s", val)
	}

	if err := ss.Delete(q); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = ss.Query(q)
	if !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Expected item not found, got %v", err)
	}
}

func TestInMemorySecretStore_InsertDuplicate(t *testing.T) {
	ss := NewInMemorySecretStore()
	item := Item{Query: Query{Account: "key"}, Data: []byte("a")}

	if err := ss.Insert(item); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	err := ss.Insert(item)
	if !IsStatus(err, StatusDuplicateItem) {
		t.Fatalf("Expected duplicate item, got %v", err)
	}
}

func TestInMemorySecretStore_ScopeIsExact(t *testing.T) {
	ss := NewInMemorySecretStore()
	if err := ss.Insert(Item{Query: Query{Account: "key", AccessGroup: "A"}, Data: []byte("a")}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	for _, q := range []Query{
		{Account: "key"},
		{Account: "key", AccessGroup: "B"},
		{Account: "key", AccessGroup: "A", Accessibility: AccessibleAfterFirstUnlock},
	} {
		if _, err := ss.Query(q); !IsStatus(err, StatusItemNotFound) {
			t.Errorf("Query %+v: expected item not found, got %v", q, err)
		}
	}

	// Default and explicit when-unlocked are the same scope.
	if _, err := ss.Query(Query{Account: "key", AccessGroup: "A", Accessibility: AccessibleWhenUnlocked}); err != nil {
		t.Errorf("Query with resolved default failed: %v", err)
	}
}

func TestInMemorySecretStore_UpdateMissing(t *testing.T) {
	ss := NewInMemorySecretStore()
	err := ss.Update(Query{Account: "missing"}, []byte("x"))
	if !IsStatus(err, StatusItemNotFound) {
		t.Fatalf("Expected item not found, got %v", err)
	}
	if ss.Len() != 0 {
		t.Errorf("Update must not insert, got %d entries", ss.Len())
	}
}

func TestInMemorySecretStore_CopiesData(t *testing.T) {
	ss := NewInMemorySecretStore()
	q := Query{Account: "key"}
	data := []byte("abc")
	if err := ss.Insert(Item{Query: q, Data: data}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	data[0] = 'x'

	got, _ := ss.Query(q)
	if string(got) != "abc" {
		t.Errorf("Expected stored copy abc, got %s", got)
	}
}

func TestInMemorySecretStore_DeleteAll(t *testing.T) {
	ss := NewInMemorySecretStore()
	ss.Insert(Item{Query: Query{Account: "a"}, Data: []byte("1")})
	ss.Insert(Item{Query: Query{Account: "b", AccessGroup: "g"}, Data: []byte("2")})

	if err := ss.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if ss.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", ss.Len())
	}
	if err := ss.DeleteAll(); !IsStatus(err, StatusItemNotFound) {
		t.Errorf("Expected item not found on empty store, got %v", err)
	}
}
