package hub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	redisModels "petSocial/internal/models/redis"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// Conn is the part of *websocket.Conn the hub needs; tests plug in fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Client struct {
	UserID uint
	Conn   Conn
}

// Hub keeps at most one open channel per user. Notifications go through
// redis pub/sub, so an instance only delivers to sockets it holds itself.
type Hub struct {
	mu      sync.Mutex
	clients map[uint]*Client
	redis   *redis.Client
	ctx     context.Context
}

func NewHub(ctx context.Context, redis *redis.Client) *Hub {
	return &Hub{
		clients: make(map[uint]*Client),
		redis:   redis,
		ctx:     ctx,
	}
}

// Register replaces any prior channel for the user; the superseded
// connection is closed so its read loop terminates.
func (h *Hub) Register(userID uint, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.clients[userID]; ok && existing.Conn != conn {
		if err := existing.Conn.Close(); err != nil {
			log.Printf("Error closing superseded connection for user %d: %v", userID, err)
		}
	}
	h.clients[userID] = &Client{UserID: userID, Conn: conn}
}

// Unregister removes the registration only if conn is still the active
// channel, so a superseded connection cannot evict its replacement.
func (h *Hub) Unregister(userID uint, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.clients[userID]; ok && existing.Conn == conn {
		delete(h.clients, userID)
	}
}

// Notify publishes a payload for a user. Delivery is best effort: if no
// instance holds a channel for the user the event is dropped.
func (h *Hub) Notify(userID uint, payload string) {
	event := redisModels.NotificationEvent{
		UserID:  userID,
		Payload: payload,
	}
	jsonEvent, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshalling notification event: %v", err)
		return
	}
	if err := h.redis.Publish(h.ctx, redisModels.REDIS_CHANNEL_NOTIFICATIONS, jsonEvent).Err(); err != nil {
		log.Printf("Error publishing notification event: %v", err)
	}
}

// Run consumes the notification channel and delivers to local sockets.
// Meant to run once as a goroutine for the process lifetime.
func (h *Hub) Run() {
	pubsub := h.redis.Subscribe(h.ctx, redisModels.REDIS_CHANNEL_NOTIFICATIONS)
	if _, err := pubsub.Receive(h.ctx); err != nil {
		log.Fatalf("Could not subscribe to notification channel: %v", err)
	}
	for msg := range pubsub.Channel() {
		var event redisModels.NotificationEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Error unmarshalling notification event: %v", err)
			continue
		}
		h.deliver(event.UserID, event.Payload)
	}
}

// Send writes to the user's locally held channel. All socket writes go
// through the hub mutex; gorilla connections do not allow concurrent
// writers.
func (h *Hub) Send(userID uint, payload string) {
	h.deliver(userID, payload)
}

func (h *Hub) deliver(userID uint, payload string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[userID]
	if !ok {
		return
	}
	if err := client.Conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
		log.Printf("Error writing to user %d, dropping connection: %v", userID, err)
		if err := client.Conn.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
		delete(h.clients, userID)
	}
}

// Shutdown closes every open channel, e.g. on server exit.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, client := range h.clients {
		if err := client.Conn.Close(); err != nil {
			log.Printf("Error closing connection for user %d: %v", userID, err)
		}
		delete(h.clients, userID)
	}
}
