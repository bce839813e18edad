package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// FeedAll subscribes a client to every collection's activity
	FeedAll = "*"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (for development)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// subscription pairs a client with a collection feed
type subscription struct {
	client       *Client
	collectionID string
}

// feedMessage is a payload targeted at one collection's subscribers
type feedMessage struct {
	collectionID string
	data         []byte
}

// Hub maintains the set of active clients and fans marketplace activity
// out to collection subscribers. All state is owned by the Run loop;
// other goroutines talk to it over channels only.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Clients by collection ID that they're watching
	collectionClients map[string]map[*Client]bool

	// Activity fan-out
	feed chan feedMessage

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Subscription changes from client read pumps
	subscribe   chan subscription
	unsubscribe chan subscription
}

// NewHub creates a new hub
func NewHub() *Hub {
	return &Hub{
		feed:              make(chan feedMessage, 64),
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		subscribe:         make(chan subscription),
		unsubscribe:       make(chan subscription),
		clients:           make(map[*Client]bool),
		collectionClients: make(map[string]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			h.drop(client)
		case sub := <-h.subscribe:
			if _, ok := h.collectionClients[sub.collectionID]; !ok {
				h.collectionClients[sub.collectionID] = make(map[*Client]bool)
			}
			h.collectionClients[sub.collectionID][sub.client] = true
		case sub := <-h.unsubscribe:
			if clients, ok := h.collectionClients[sub.collectionID]; ok {
				delete(clients, sub.client)
				if len(clients) == 0 {
					delete(h.collectionClients, sub.collectionID)
				}
			}
		case msg := <-h.feed:
			h.deliver(h.collectionClients[msg.collectionID], msg.data)
			h.deliver(h.collectionClients[FeedAll], msg.data)
		}
	}
}

// deliver sends a message to a subscriber set, dropping clients whose
// send buffer is full
func (h *Hub) deliver(clients map[*Client]bool, message []byte) {
	for client := range clients {
		select {
		case client.send <- message:
		default:
			h.drop(client)
		}
	}
}

// drop removes a client from the hub and every subscription
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	for collectionID, clients := range h.collectionClients {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.collectionClients, collectionID)
		}
	}
}

// PublishActivity pushes a freshly recorded activity to the live feed.
// The feed channel is buffered; if it is saturated the event is dropped
// rather than blocking the trade path.
func (h *Hub) PublishActivity(activity models.Activity) {
	payload, err := json.Marshal(activity)
	if err != nil {
		zap.L().Error("marshalling activity for feed failed", zap.Error(err))
		return
	}

	message, err := json.Marshal(WebSocketMessage{
		Type:    "activity",
		Payload: payload,
	})
	if err != nil {
		zap.L().Error("marshalling feed message failed", zap.Error(err))
		return
	}

	select {
	case h.feed <- feedMessage{collectionID: activity.CollectionID, data: message}:
	default:
		zap.L().Warn("activity feed saturated, dropping event",
			zap.String("activity", activity.ID))
	}
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("websocket read failed", zap.Error(err))
			}
			break
		}

		var wsMessage WebSocketMessage
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			zap.L().Warn("unparseable websocket message", zap.Error(err))
			continue
		}

		switch wsMessage.Type {
		case "subscribe":
			var collectionID string
			if err := json.Unmarshal(wsMessage.Payload, &collectionID); err != nil {
				zap.L().Warn("unparseable subscribe payload", zap.Error(err))
				continue
			}
			c.hub.subscribe <- subscription{client: c, collectionID: collectionID}

		case "unsubscribe":
			var collectionID string
			if err := json.Unmarshal(wsMessage.Payload, &collectionID); err != nil {
				zap.L().Warn("unparseable unsubscribe payload", zap.Error(err))
				continue
			}
			c.hub.unsubscribe <- subscription{client: c, collectionID: collectionID}
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs handles WebSocket requests for the market feed
func ServeWs(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			zap.L().Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			hub:  hub,
			conn: conn,
			send: make(chan []byte, 256),
		}
		client.hub.register <- client

		welcomeMsg := WebSocketMessage{
			Type:    "welcome",
			Payload: json.RawMessage(`{"message":"Connected to ARC market feed"}`),
		}
		welcomeBytes, _ := json.Marshal(welcomeMsg)
		client.send <- welcomeBytes

		go client.writePump()
		go client.readPump()
	}
}
