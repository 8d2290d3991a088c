package records

import (
	"errors"
	"testing"
)

func TestLazyGetCachesSuccess(t *testing.T) {
	calls := 0
	lazy := NewLazy(func() (any, error) {
		calls++
		return calls, nil
	})
	if lazy.Resolved() {
		t.Fatalf("expected lazy to start unresolved")
	}
	for range 3 {
		value, err := lazy.Get()
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if value != 1 {
			t.Fatalf("expected cached value 1, got %v", value)
		}
	}
	if !lazy.Resolved() {
		t.Fatalf("expected lazy to be resolved")
	}
}

func TestLazyGetRetriesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	lazy := NewLazy(func() (any, error) {
		calls++
		if calls < 3 {
			return nil, boom
		}
		return "done", nil
	})

	for range 2 {
		if _, err := lazy.Get(); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if lazy.Resolved() {
			t.Fatalf("failure must not mark lazy resolved")
		}
	}
	value, err := lazy.Get()
	if err != nil || value != "done" {
		t.Fatalf("expected done, got %v (%v)", value, err)
	}
}

func TestLazyResolvedNilReceiver(t *testing.T) {
	var lazy *Lazy
	if lazy.Resolved() {
		t.Fatalf("nil lazy must report unresolved")
	}
}

func TestSupplierNil(t *testing.T) {
	if Supplier(nil) != nil {
		t.Fatalf("expected nil LazyFunc for nil supplier")
	}
}
