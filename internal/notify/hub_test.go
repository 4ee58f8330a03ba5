package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devraj326/Vedss/internal/models"
)

func receiveOne(t *testing.T, sub *Subscriber) Message {
	t.Helper()
	select {
	case msg, ok := <-sub.C():
		require.True(t, ok, "channel closed before delivery")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHubDeliversToConnectedSubscribers(t *testing.T) {
	hub := NewHub(nil)
	first := hub.Subscribe()
	second := hub.Subscribe()

	hub.Publish(models.ReminderEventSweet, models.ReminderMessage{Message: "hello"})

	for _, sub := range []*Subscriber{first, second} {
		msg := receiveOne(t, sub)
		assert.Equal(t, models.ReminderEventSweet, msg.Event)
		assert.Equal(t, "hello", msg.Payload.Message)
	}
}

func TestHubNoReplayForLateSubscriber(t *testing.T) {
	hub := NewHub(nil)

	hub.Publish(models.ReminderEventSweet, models.ReminderMessage{Message: "before"})

	late := hub.Subscribe()
	hub.Publish(models.ReminderEventSweet, models.ReminderMessage{Message: "after"})

	msg := receiveOne(t, late)
	assert.Equal(t, "after", msg.Payload.Message)

	select {
	case extra := <-late.C():
		t.Fatalf("unexpected second message: %q", extra.Payload.Message)
	default:
	}
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(nil)

	assert.NotPanics(t, func() {
		hub.Publish(models.ReminderEventUpcoming, models.ReminderMessage{Message: "nobody home"})
	})
	assert.Equal(t, 0, hub.Connected())
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe()
	require.Equal(t, 1, hub.Connected())

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.Connected())

	_, ok := <-sub.C()
	assert.False(t, ok, "channel should be closed after unsubscribe")

	hub.Publish(models.ReminderEventSweet, models.ReminderMessage{Message: "gone"})
}

func TestHubSecondPublishAfterPartialUnsubscribe(t *testing.T) {
	hub := NewHub(nil)
	leaving := hub.Subscribe()
	staying := hub.Subscribe()

	hub.Publish(models.ReminderEventUpcoming, models.ReminderMessage{Message: "first"})
	assert.Equal(t, "first", receiveOne(t, leaving).Payload.Message)
	assert.Equal(t, "first", receiveOne(t, staying).Payload.Message)

	hub.Unsubscribe(leaving)
	hub.Publish(models.ReminderEventUpcoming, models.ReminderMessage{Message: "second"})

	assert.Equal(t, "second", receiveOne(t, staying).Payload.Message)
	_, ok := <-leaving.C()
	assert.False(t, ok)
}

func TestHubUnsubscribeIdempotent(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	assert.NotPanics(t, func() {
		hub.Unsubscribe(sub)
		hub.Unsubscribe(nil)
	})
}

func TestHubDropsWhenSubscriberSaturated(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(models.ReminderEventSweet, models.ReminderMessage{Message: "burst"})
	}

	drained := 0
	for {
		select {
		case <-sub.C():
			drained++
		default:
			assert.Equal(t, subscriberBuffer, drained)
			return
		}
	}
}
