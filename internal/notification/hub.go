package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"court-scheduling-backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// subscriber is one websocket connection
type subscriber struct {
	userID   string
	district string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub fans events out to websocket subscribers. A subscriber registered with
// a district only receives events of that district; an empty district
// receives everything. Publish never blocks on a slow subscriber.
type Hub struct {
	upgrader   websocket.Upgrader
	bufferSize int

	mu      sync.RWMutex
	clients map[*subscriber]struct{}
}

// NewHub creates a hub whose subscribers buffer up to bufferSize messages.
// checkOrigin may be nil to accept any origin.
func NewHub(bufferSize int, checkOrigin func(r *http.Request) bool) *Hub {
	if bufferSize <= 0 {
		bufferSize = 32
	}
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		bufferSize: bufferSize,
		clients:    make(map[*subscriber]struct{}),
	}
}

// Publish queues event for every matching subscriber
func (h *Hub) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.clients {
		if s.district != "" && !strings.EqualFold(s.district, event.District) {
			continue
		}
		select {
		case s.send <- payload:
		default:
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"subscriber": s.userID,
				"event":      string(event.Type),
			}).Warn("subscriber buffer full, dropping event")
		}
	}
	return nil
}

// Subscribers returns the number of connected subscribers
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request and streams events until the peer goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID, district string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade: %w", err)
	}

	s := &subscriber{
		userID:   userID,
		district: strings.TrimSpace(district),
		conn:     conn,
		send:     make(chan []byte, h.bufferSize),
	}
	h.register(s)
	logger.New().WithFields(map[string]interface{}{"user": userID, "district": s.district}).Info("notification subscriber connected")

	go h.writePump(s)
	h.readPump(s)
	return nil
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.clients {
		delete(h.clients, s)
		close(s.send)
	}
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	h.clients[s] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
	}
	h.mu.Unlock()
}

// readPump discards inbound messages and detects disconnects
func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
		logger.New().WithField("user", s.userID).Info("notification subscriber disconnected")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.New().WithField("user", s.userID).Warnf("error sending notification: %v", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
