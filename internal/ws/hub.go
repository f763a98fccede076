package ws

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const redisPubSubChannel = "accord:events"

// Event types pushed to live sessions
const (
	EventDirectMessage = "direct_message"
	EventChatMessage   = "chat_message"
)

// Event represents a real-time event sent via WebSocket
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub manages WebSocket clients and routes events to them. Events are
// either targeted at a single user's connections (direct messages) or
// broadcast to everyone (channel chat).
type Hub struct {
	// Registered clients grouped by user ID
	clients map[string]map[*Client]bool

	// Register/unregister channels
	register   chan *Client
	unregister chan *Client

	// Delivery channel; empty UserID means broadcast to all
	deliver chan *targetedEvent

	mu          sync.RWMutex
	redisClient *redis.Client
	ctx         context.Context
	cancel      context.CancelFunc
}

type targetedEvent struct {
	UserID string
	Event  *Event
}

// NewHub creates a new Hub. redisClient may be nil, which limits
// delivery to clients connected to this instance.
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		deliver:     make(chan *targetedEvent, 256),
		redisClient: redisClient,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.redisClient != nil {
		go h.subscribeRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.userID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.deliver:
			h.dispatch(msg)

		case <-h.ctx.Done():
			return
		}
	}
}

// dispatch writes an event to the targeted connections without blocking
// on slow consumers
func (h *Hub) dispatch(msg *targetedEvent) {
	data, err := json.Marshal(msg.Event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.UserID == "" {
		for _, clients := range h.clients {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(clients, client)
				}
			}
		}
		return
	}

	if clients, ok := h.clients[msg.UserID]; ok {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				close(client.send)
				delete(clients, client)
			}
		}
	}
}

// SendToUser sends an event to one user's connections (local + Redis relay)
func (h *Hub) SendToUser(userID string, event *Event) {
	h.publish(&targetedEvent{UserID: userID, Event: event})
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(event *Event) {
	h.publish(&targetedEvent{Event: event})
}

func (h *Hub) publish(msg *targetedEvent) {
	// With Redis, all delivery goes through the relay so local clients
	// receive each event exactly once
	if h.redisClient != nil {
		data, err := json.Marshal(redisMessage{UserID: msg.UserID, Event: msg.Event})
		if err == nil {
			h.redisClient.Publish(h.ctx, redisPubSubChannel, data) //nolint:errcheck
		}
		return
	}

	// Local delivery; drop instead of blocking when the hub is saturated
	select {
	case h.deliver <- msg:
	default:
	}
}

// NotifyDirectMessage implements the direct message delivery notifier:
// push a persisted message to the recipient's live sessions
func (h *Hub) NotifyDirectMessage(recipientID int64, msg *domain.DirectMessage) {
	h.SendToUser(strconv.FormatInt(recipientID, 10), &Event{
		Type:    EventDirectMessage,
		Payload: msg,
	})
}

// BroadcastChatMessage pushes a persisted channel message to all clients
func (h *Hub) BroadcastChatMessage(msg *domain.ChatMessage) {
	h.Broadcast(&Event{
		Type:    EventChatMessage,
		Payload: msg,
	})
}

type redisMessage struct {
	UserID string `json:"user_id,omitempty"`
	Event  *Event `json:"event"`
}

// subscribeRedis listens for events relayed by other publishers
func (h *Hub) subscribeRedis() {
	pubsub := h.redisClient.Subscribe(h.ctx, redisPubSubChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var rm redisMessage
			if err := json.Unmarshal([]byte(msg.Payload), &rm); err == nil {
				// Local delivery only (don't re-publish to Redis)
				select {
				case h.deliver <- &targetedEvent{UserID: rm.UserID, Event: rm.Event}:
				default:
				}
			}
		case <-h.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	h.cancel()
}
