package usersink

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-records/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// ObjectType is the go-users object type used for record events.
const ObjectType = "record"

// Hook adapts record activity events to a go-users ActivitySink. The keeper ID
// becomes the actor when it parses as a UUID.
type Hook struct {
	Sink usertypes.ActivitySink
	// TenantID is attached to every forwarded record when set.
	TenantID uuid.UUID
}

// Notify maps the event into an ActivityRecord and forwards it to the sink.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}

	normalized := activity.NormalizeEvent(event)
	if normalized.Verb == "" || normalized.Record == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	data := cloneMap(normalized.Metadata)
	if data == nil {
		data = map[string]any{}
	}
	data["level"] = normalized.Level
	if normalized.KeeperID != "" {
		data["keeper_id"] = normalized.KeeperID
	}

	record := usertypes.ActivityRecord{
		ActorID:    parseUUID(normalized.KeeperID),
		TenantID:   h.TenantID,
		Verb:       normalized.Verb,
		ObjectType: ObjectType,
		ObjectID:   normalized.Record,
		Channel:    normalized.Channel,
		Data:       data,
		OccurredAt: normalized.OccurredAt,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now()
	}

	return h.Sink.Log(ctx, record)
}

func parseUUID(input string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
