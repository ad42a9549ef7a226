package events

import (
	"context"

	"go.uber.org/zap"
)

// EventRecorder counts events by type.
type EventRecorder interface {
	RecordEvent(eventType string)
}

// RegisterAudit subscribes a logging handler to every known event type so
// domain activity lands in the structured log and the metrics counters.
func RegisterAudit(dispatcher Dispatcher, logger *zap.Logger, recorder EventRecorder) {
	types := []EventType{
		EventProfileViewed,
		EventSectionCompleted,
		EventSectionIncompleted,
		EventUsersProvisioned,
	}

	for _, eventType := range types {
		dispatcher.Subscribe(eventType, func(_ context.Context, event Event) error {
			logger.Info("domain event",
				zap.String("type", string(event.Type)),
				zap.String("actor_id", event.ActorID),
				zap.String("subject_id", event.SubjectID),
				zap.Any("payload", event.Payload),
			)
			if recorder != nil {
				recorder.RecordEvent(string(event.Type))
			}
			return nil
		})
	}
}
