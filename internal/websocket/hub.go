// Package livews pushes freshly polled report snapshots to connected
// dashboards, replacing the browser-side refetch timers of the old UI.
package livews

import (
	"context"
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
)

// Topics the dashboard widgets can subscribe to.
const (
	TopicSales     = "sales"
	TopicOccupancy = "occupancy"
	TopicLogs      = "logs"
)

type Hub struct {
	topics     map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Update
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	topics []string
	send   chan []byte
}

// Update is one published snapshot for one topic.
type Update struct {
	Topic     string `json:"topic"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Update, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, topics []string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		topics: topics,
		send:   make(chan []byte, 32),
	}
}

// Run owns all subscription state. It exits when ctx is cancelled, closing
// every client send channel so the write pumps drain and return.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			for _, topic := range client.topics {
				set, ok := h.topics[topic]
				if !ok {
					set = make(map[*Client]struct{})
					h.topics[topic] = set
				}
				set[client] = struct{}{}
			}
		case client := <-h.unregister:
			h.drop(client)
		case update := <-h.broadcast:
			h.deliver(update)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish queues a snapshot for every subscriber of the topic. Called from
// the poller goroutines; drops the update when the hub is saturated rather
// than stalling a poll loop.
func (h *Hub) Publish(topic string, payload any) {
	update := &Update{
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	select {
	case h.broadcast <- update:
	default:
		log.Printf("live hub: dropping %s update, broadcast queue full", topic)
	}
}

func (h *Hub) deliver(update *Update) {
	set, ok := h.topics[update.Topic]
	if !ok {
		return
	}

	encoded, err := json.Marshal(update)
	if err != nil {
		log.Printf("live hub: encode %s update: %v", update.Topic, err)
		return
	}

	for client := range set {
		select {
		case client.send <- encoded:
		default:
			// Slow consumer; disconnect instead of backing up the hub.
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	dropped := false
	for _, topic := range client.topics {
		set, ok := h.topics[topic]
		if !ok {
			continue
		}
		if _, exists := set[client]; exists {
			delete(set, client)
			dropped = true
		}
		if len(set) == 0 {
			delete(h.topics, topic)
		}
	}
	if dropped {
		close(client.send)
	}
}

func (h *Hub) closeAll() {
	closed := make(map[*Client]struct{})
	for topic, set := range h.topics {
		for client := range set {
			if _, done := closed[client]; !done {
				close(client.send)
				closed[client] = struct{}{}
			}
		}
		delete(h.topics, topic)
	}
}

// ReadPump discards inbound frames (the dashboard only listens) and
// unregisters on disconnect.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
