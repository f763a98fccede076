package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func startTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

// receiveEvent waits for one event on the client's send channel
func receiveEvent(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case data := <-c.send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("failed to decode event: %v", err)
		}
		return &event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case data := <-c.send:
		t.Fatalf("unexpected event: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_NotifyDirectMessage_TargetsRecipientOnly(t *testing.T) {
	hub := startTestHub(t)

	recipient := NewClient(hub, nil, "2")
	bystander := NewClient(hub, nil, "3")
	hub.Register(recipient)
	hub.Register(bystander)

	hub.NotifyDirectMessage(2, &domain.DirectMessage{
		ID: 1, SenderID: 1, RecipientID: 2, Content: "hello",
	})

	event := receiveEvent(t, recipient)
	assert.Equal(t, EventDirectMessage, event.Type)

	payload := event.Payload.(map[string]any)
	assert.Equal(t, "hello", payload["content"])
	assert.Equal(t, float64(2), payload["recipientId"])
	assert.Equal(t, false, payload["read"])

	assertNoEvent(t, bystander)
}

func TestHub_NotifyDirectMessage_AllRecipientSessions(t *testing.T) {
	hub := startTestHub(t)

	first := NewClient(hub, nil, "2")
	second := NewClient(hub, nil, "2")
	hub.Register(first)
	hub.Register(second)

	hub.NotifyDirectMessage(2, &domain.DirectMessage{ID: 1, RecipientID: 2, Content: "hi"})

	assert.Equal(t, EventDirectMessage, receiveEvent(t, first).Type)
	assert.Equal(t, EventDirectMessage, receiveEvent(t, second).Type)
}

func TestHub_NotifyDirectMessage_NoSessionsIsDropped(t *testing.T) {
	hub := startTestHub(t)

	// Nobody connected; must not block or panic
	hub.NotifyDirectMessage(99, &domain.DirectMessage{ID: 1, RecipientID: 99, Content: "hi"})
}

func TestHub_BroadcastChatMessage_ReachesEveryone(t *testing.T) {
	hub := startTestHub(t)

	alice := NewClient(hub, nil, "1")
	bob := NewClient(hub, nil, "2")
	hub.Register(alice)
	hub.Register(bob)

	hub.BroadcastChatMessage(&domain.ChatMessage{ID: 1, Username: "alice", Content: "hey all"})

	for _, c := range []*Client{alice, bob} {
		event := receiveEvent(t, c)
		assert.Equal(t, EventChatMessage, event.Type)
		payload := event.Payload.(map[string]any)
		assert.Equal(t, "hey all", payload["content"])
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := startTestHub(t)

	client := NewClient(hub, nil, "2")
	hub.Register(client)
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for send channel to close")
	}

	// Delivery after disconnect is silently dropped
	hub.NotifyDirectMessage(2, &domain.DirectMessage{ID: 1, RecipientID: 2, Content: "late"})
}
