package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishToUser(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "broadcast", Data: "hello"})
	hub.Publish("user-2", Event{Event: "broadcast", Data: "not for us"})

	ev := <-ch
	assert.Equal(t, "broadcast", ev.Event)
	assert.Equal(t, "hello", ev.Data)
	assert.Empty(t, ch)
}

func TestHubPublishAll(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.PublishAll(Event{Event: "broadcast", Data: "everyone"})

	assert.Equal(t, "everyone", (<-ch1).Data)
	assert.Equal(t, "everyone", (<-ch2).Data)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	assert.Equal(t, 1, hub.SubscriberCount())

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Publishing after cleanup must not panic.
	hub.PublishAll(Event{Event: "broadcast", Data: "nobody"})
}

func TestHubFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; publishing more must drop, not deadlock.
	for i := 0; i < 25; i++ {
		hub.Publish("user-1", Event{Event: "broadcast", Data: i})
	}
}
