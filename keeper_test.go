package records

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetRecordsFiltersByLevel(t *testing.T) {
	k := New()
	k.RecordValue("critical", "one", 1)
	k.RecordValue("important", "two", 10)
	k.RecordValue("unimportant", "three", 20)

	got, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if diff := cmp.Diff(Records{"critical": "one", "important": "two"}, got); diff != "" {
		t.Fatalf("records at 10 mismatch (-want +got):\n%s", diff)
	}

	got, err = k.GetRecords(1)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if diff := cmp.Diff(Records{"critical": "one"}, got); diff != "" {
		t.Fatalf("records at 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRecordsMostVerboseEligibleLevelWins(t *testing.T) {
	k := New()
	k.RecordValue("fieldName", "one", 1)
	k.RecordValue("fieldName", "two", 10)
	k.RecordValue("fieldName", "three", 20)

	cases := map[Level]string{1: "one", 5: "one", 10: "two", 19: "two", 20: "three", 100: "three"}
	for maxLevel, want := range cases {
		got, err := k.GetRecords(maxLevel)
		if err != nil {
			t.Fatalf("get records %d: %v", maxLevel, err)
		}
		if diff := cmp.Diff(Records{"fieldName": want}, got); diff != "" {
			t.Fatalf("records at %d mismatch (-want +got):\n%s", maxLevel, diff)
		}
	}

	got, err := k.GetRecords(0)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty view below every level, got %v", got)
	}
}

func TestGetRecordsEmptyKeeper(t *testing.T) {
	got, err := New().GetRecords(100)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil records, got %#v", got)
	}
}

func TestRecordValueOverwritesSameLevel(t *testing.T) {
	k := New()
	k.RecordValue("status", "starting", 10)
	k.RecordValue("status", "ready", 10)

	got, _ := k.GetRecords(10)
	if got["status"] != "ready" {
		t.Fatalf("expected last write to win, got %v", got["status"])
	}
	if k.Len() != 1 {
		t.Fatalf("expected a single slot, got %d", k.Len())
	}
}

func TestRecordValuesMergesIntoLevel(t *testing.T) {
	k := New()
	k.RecordValues(map[string]any{"one": 1, "shared": "first", "two": 2}, 10)
	k.RecordValues(map[string]any{"shared": "second", "four": 4}, 10)

	got, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	want := Records{"one": 1, "two": 2, "shared": "second", "four": 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordValuesEmptyIsNoop(t *testing.T) {
	k := New()
	k.RecordValue("kept", true, 10)
	k.RecordValues(nil, 10)
	k.RecordValues(map[string]any{}, 10)

	got, _ := k.GetRecords(10)
	if diff := cmp.Diff(Records{"kept": true}, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordValuesDoesNotAliasInput(t *testing.T) {
	k := New()
	input := map[string]any{"host": "db-1"}
	k.RecordValues(input, 10)
	input["host"] = "db-2"
	input["extra"] = true

	got, _ := k.GetRecords(10)
	if diff := cmp.Diff(Records{"host": "db-1"}, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestNilValueIsAPresentRecord(t *testing.T) {
	k := New()
	k.RecordValue("cleared", "value", 1)
	k.RecordValue("cleared", nil, 10)

	got, _ := k.GetRecords(10)
	value, ok := got["cleared"]
	if !ok || value != nil {
		t.Fatalf("expected nil value to shadow lower level, got %v (present=%v)", value, ok)
	}
}

func TestRecordLazyOnlyRunsWhenSelected(t *testing.T) {
	k := New()
	calls := 0
	k.RecordLazy("heap", func() (any, error) {
		calls++
		return "42MB", nil
	}, 20)

	if _, err := k.GetRecords(10); err != nil {
		t.Fatalf("get records: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no evaluation below level, got %d calls", calls)
	}

	for range 3 {
		got, err := k.GetRecords(20)
		if err != nil {
			t.Fatalf("get records: %v", err)
		}
		if got["heap"] != "42MB" {
			t.Fatalf("expected resolved value, got %v", got["heap"])
		}
	}
	if calls != 1 {
		t.Fatalf("expected exactly one evaluation, got %d", calls)
	}

	trace := k.Trace("heap", 20)
	if trace.Layers[0].Pending || trace.Layers[0].Value != "42MB" {
		t.Fatalf("expected resolved value written back, got %+v", trace.Layers[0])
	}
}

func TestShadowedLazyIsNeverEvaluated(t *testing.T) {
	k := New()
	calls := 0
	k.RecordLazy("summary", func() (any, error) {
		calls++
		return "expensive", nil
	}, 1)
	k.RecordValue("summary", "cheap", 10)

	got, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if got["summary"] != "cheap" {
		t.Fatalf("expected higher level to win, got %v", got["summary"])
	}
	if calls != 0 {
		t.Fatalf("expected shadowed lazy to stay deferred, got %d calls", calls)
	}
}

func TestLazyFailureIsNotCached(t *testing.T) {
	k := New()
	boom := errors.New("pprof unavailable")
	calls := 0
	k.RecordLazy("heap", func() (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}, 20)
	k.RecordValue("status", "ready", 1)

	_, err := k.GetRecords(20)
	if !errors.Is(err, boom) {
		t.Fatalf("expected computation error, got %v", err)
	}
	var resolveErr *ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if resolveErr.Name != "heap" || resolveErr.Level != 20 {
		t.Fatalf("unexpected resolve error metadata: %+v", resolveErr)
	}
	if !k.Trace("heap", 20).Layers[0].Pending {
		t.Fatalf("expected failed slot to remain deferred")
	}

	got, err := k.GetRecords(20)
	if err != nil {
		t.Fatalf("second retrieval: %v", err)
	}
	if diff := cmp.Diff(Records{"heap": "ok", "status": "ready"}, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if calls != 2 {
		t.Fatalf("expected computation re-invoked once, got %d calls", calls)
	}
}

func TestRecordLazyNilComputation(t *testing.T) {
	k := New()
	k.RecordLazy("broken", nil, 1)

	_, err := k.GetRecords(1)
	if !errors.Is(err, ErrNilComputation) {
		t.Fatalf("expected ErrNilComputation, got %v", err)
	}
}

func TestStoredLazyValueIsDeferred(t *testing.T) {
	k := New()
	k.RecordValue("uptime", NewLazy(Supplier(func() any { return "3h" })), 10)

	got, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if got["uptime"] != "3h" {
		t.Fatalf("expected *Lazy passed to RecordValue to resolve, got %v", got["uptime"])
	}
}

func TestGetRecordsIsIdempotent(t *testing.T) {
	k := New()
	k.RecordValue("a", 1, 1)
	k.RecordLazy("b", func() (any, error) { return 2, nil }, 10)
	k.RecordValue("c", 3, 30)

	first, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("retrievals differ (-first +second):\n%s", diff)
	}
}

func TestAtWritesThroughToKeeper(t *testing.T) {
	k := New()
	w := k.At(10)
	if w.Level() != 10 {
		t.Fatalf("expected bound level 10, got %d", w.Level())
	}
	w.RecordValue("one", 1)
	w.RecordValues(map[string]any{"two": 2})
	w.RecordLazy("three", Supplier(func() any { return 3 }))

	var rec Recorder = k.At(1)
	rec.RecordValue("zero", 0)

	got, err := k.GetRecords(10)
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	want := Records{"zero": 0, "one": 1, "two": 2, "three": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Level{1, 10}, k.Levels()); diff != "" {
		t.Fatalf("levels mismatch (-want +got):\n%s", diff)
	}
	if k.Len() != 4 {
		t.Fatalf("expected 4 slots, got %d", k.Len())
	}
}

func TestNegativeAndSparseLevels(t *testing.T) {
	k := New()
	k.RecordValue("always", "yes", -5)
	k.RecordValue("sparse", "far", 1000)

	got, _ := k.GetRecords(0)
	if diff := cmp.Diff(Records{"always": "yes"}, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	got, _ = k.GetRecords(1000)
	if len(got) != 2 {
		t.Fatalf("expected both records at 1000, got %v", got)
	}
}

func TestKeeperID(t *testing.T) {
	if New().ID() == "" {
		t.Fatalf("expected generated keeper id")
	}
	if got := New(WithKeeperID(" checkout ")).ID(); got != "checkout" {
		t.Fatalf("expected trimmed keeper id, got %q", got)
	}
}
