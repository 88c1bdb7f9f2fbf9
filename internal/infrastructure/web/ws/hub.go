package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/metrics"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard clients connect from arbitrary origins
	CheckOrigin: func(*http.Request) bool { return true },
}

// client is one connected websocket subscriber with a bounded outbound queue.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans price updates out to every connected websocket client. Clients
// that cannot keep up are disconnected rather than allowed to stall the
// broadcast.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]bool
	closed  bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

// Handler upgrades the request and registers the connection
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.WarnWithError(r.Context(), "WebSocket upgrade failed", err, nil)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c] = true
	h.mu.Unlock()
	metrics.WebSocketClients.Inc()

	logging.Debug(r.Context(), "WebSocket client connected", logging.Fields{
		"remote_addr": conn.RemoteAddr().String(),
	})

	go h.writePump(c)
	go h.readPump(c)
}

// Broadcast marshals the payload once and queues it to every client. A client
// with a full queue is dropped.
func (h *Hub) Broadcast(payload interface{}) {
	message, err := json.Marshal(payload)
	if err != nil {
		logging.ErrorWithError(context.Background(), "WebSocket broadcast marshal failed", err, nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- message:
		default:
			h.dropLocked(c)
		}
	}
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and rejects future connections
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.dropLocked(c)
	}
}

// dropLocked removes a client. Caller holds the lock.
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	metrics.WebSocketClients.Dec()
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	h.dropLocked(c)
	h.mu.Unlock()
}

// readPump discards inbound frames and detects disconnects. The stream is
// push-only; clients send nothing but control frames.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.drop(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump drains the client's queue and keeps the connection alive with
// pings.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.drop(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(c)
				return
			}
		}
	}
}
