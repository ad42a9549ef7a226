package events

import "time"

// EventType identifies the kind of domain event.
type EventType string

const (
	EventProfileViewed      EventType = "profile_viewed"
	EventSectionCompleted   EventType = "section_completed"
	EventSectionIncompleted EventType = "section_incompleted"
	EventUsersProvisioned   EventType = "users_provisioned"
)

// Event carries a domain occurrence to subscribers.
type Event struct {
	Type       EventType
	OccurredAt time.Time
	ActorID    string
	SubjectID  string
	Payload    map[string]any
}

// NewEvent builds an event stamped with the current time.
func NewEvent(eventType EventType, actorID, subjectID string, payload map[string]any) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		ActorID:    actorID,
		SubjectID:  subjectID,
		Payload:    payload,
	}
}
