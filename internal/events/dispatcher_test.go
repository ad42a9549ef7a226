package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribedTypeOnly(t *testing.T) {
	d := NewInMemoryDispatcher()
	var viewed, completed int
	d.Subscribe(EventProfileViewed, func(context.Context, Event) error {
		viewed++
		return nil
	})
	d.Subscribe(EventSectionCompleted, func(context.Context, Event) error {
		completed++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventProfileViewed, "", "u1", nil)))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventProfileViewed, "", "u2", nil)))

	assert.Equal(t, 2, viewed)
	assert.Zero(t, completed)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()
	var second bool
	d.Subscribe(EventUsersProvisioned, func(context.Context, Event) error {
		return errors.New("subscriber failed")
	})
	d.Subscribe(EventUsersProvisioned, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventUsersProvisioned, "admin", "", nil)))
	assert.True(t, second)
}

func TestNewEventStampsTime(t *testing.T) {
	event := NewEvent(EventSectionCompleted, "u1", "u1", map[string]any{"section": "education"})
	assert.False(t, event.OccurredAt.IsZero())
	assert.Equal(t, "education", event.Payload["section"])
}
