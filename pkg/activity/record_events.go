package activity

import "time"

const (
	VerbRecordResolved      = "record.resolved"
	VerbRecordResolveFailed = "record.resolve_failed"
)

// ResolveInput describes one deferred record resolution.
type ResolveInput struct {
	KeeperID   string
	Record     string
	Level      int
	Kind       string
	Duration   time.Duration
	Err        error
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildResolveEvent returns a record.resolved event, or record.resolve_failed
// when input.Err is set.
func BuildResolveEvent(input ResolveInput) Event {
	metadata := cloneMap(input.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["duration_ms"] = input.Duration.Milliseconds()
	if input.Kind != "" {
		metadata["kind"] = input.Kind
	}
	verb := VerbRecordResolved
	if input.Err != nil {
		verb = VerbRecordResolveFailed
		metadata["error"] = input.Err.Error()
	}
	return NormalizeEvent(Event{
		Verb:       verb,
		KeeperID:   input.KeeperID,
		Record:     input.Record,
		Level:      input.Level,
		Channel:    input.Channel,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	})
}
