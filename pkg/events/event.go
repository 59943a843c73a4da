package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	FunctionalityMoved     = "FUNCTIONALITY_MOVED"
	CoverageChanged        = "COVERAGE_CHANGED"
	DefectRefreshRequested = "DEFECT_REFRESH_REQUESTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "COVERAGE_CHANGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Id         string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// New stamps an event with a fresh id and the current time.
// The id and project are copied into the payload so subscribers can read them back.
func New(eventType string, projectId int64, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = make(map[string]interface{})
	}
	id := uuid.NewString()
	now := time.Now()
	data["event_id"] = id
	data["project_id"] = projectId
	data["occurred_at"] = now
	return BaseEvent{
		Id:         id,
		Type:       eventType,
		Data:       data,
		OccurredAt: now,
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ProjectId reads the project id back from a decoded payload.
func ProjectId(e Event) (int64, bool) {
	switch v := e.Payload()["project_id"].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	}
	return 0, false
}
