package activity

import (
	"errors"
	"testing"
	"time"
)

func TestBuildResolveEventSuccess(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := BuildResolveEvent(ResolveInput{
		KeeperID:   "keeper-1",
		Record:     "heap_profile",
		Level:      20,
		Kind:       "lazy",
		Duration:   1500 * time.Millisecond,
		Metadata:   map[string]any{"host": "db-1"},
		OccurredAt: at,
	})

	if event.Verb != VerbRecordResolved {
		t.Fatalf("expected %q, got %q", VerbRecordResolved, event.Verb)
	}
	if event.Record != "heap_profile" || event.Level != 20 || event.KeeperID != "keeper-1" {
		t.Fatalf("unexpected identity fields: %+v", event)
	}
	if event.Metadata["duration_ms"] != int64(1500) {
		t.Fatalf("expected duration_ms 1500, got %v", event.Metadata["duration_ms"])
	}
	if event.Metadata["kind"] != "lazy" || event.Metadata["host"] != "db-1" {
		t.Fatalf("unexpected metadata: %+v", event.Metadata)
	}
	if _, ok := event.Metadata["error"]; ok {
		t.Fatalf("expected no error metadata on success")
	}
	if !event.OccurredAt.Equal(at) {
		t.Fatalf("expected occurred_at preserved, got %v", event.OccurredAt)
	}
}

func TestBuildResolveEventFailure(t *testing.T) {
	input := ResolveInput{
		Record:   "heap_profile",
		Err:      errors.New("pprof unavailable"),
		Metadata: map[string]any{"host": "db-1"},
	}
	event := BuildResolveEvent(input)

	if event.Verb != VerbRecordResolveFailed {
		t.Fatalf("expected %q, got %q", VerbRecordResolveFailed, event.Verb)
	}
	if event.Metadata["error"] != "pprof unavailable" {
		t.Fatalf("expected error metadata, got %v", event.Metadata["error"])
	}
	if _, ok := input.Metadata["error"]; ok {
		t.Fatalf("input metadata must not be mutated")
	}
	if event.OccurredAt.IsZero() {
		t.Fatalf("expected timestamp default")
	}
}
