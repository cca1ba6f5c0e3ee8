package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Conn is the subset of *websocket.Conn the hub writes to. Narrowed to an
// interface so tests can observe deliveries without a network socket.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// client pairs a connection with its bounded outbound queue. A dedicated
// writer goroutine drains the queue, so a slow or dead connection never
// blocks a publish, and events enqueued in order are written in order.
type client struct {
	id    string
	conn  Conn
	send  chan []byte
	done  chan struct{}
	once  sync.Once
	rooms map[string]struct{}
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// Hub tracks live viewer connections and their article-room memberships, and
// fans events out to everyone in a room. One mutex guards both the client map
// and the room map so membership reads never observe a half-applied update
// and teardown removes a connection from all rooms in one critical section.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]struct{}

	sendBuffer   int
	pingInterval time.Duration
	writeWait    time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:      make(map[string]*client),
		rooms:        make(map[string]map[string]struct{}),
		sendBuffer:   64,
		pingInterval: 30 * time.Second,
		writeWait:    10 * time.Second,
	}
}

// Register adds a connection and starts its writer goroutine.
func (h *Hub) Register(connID string, conn Conn) {
	cl := &client{
		id:    connID,
		conn:  conn,
		send:  make(chan []byte, h.sendBuffer),
		done:  make(chan struct{}),
		rooms: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.clients[connID] = cl
	total := len(h.clients)
	h.mu.Unlock()

	go h.writePump(cl)

	log.Printf("Connection %s registered (total: %d)", connID, total)
}

// Unregister removes a connection from the hub and from every room it joined.
// Idempotent; called once from the connection's teardown path.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	cl, exists := h.clients[connID]
	if exists {
		h.removeFromRoomsLocked(cl)
		delete(h.clients, connID)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if !exists {
		return
	}
	cl.close()
	log.Printf("Connection %s unregistered (total: %d)", connID, total)
}

// Join subscribes a connection to a room. Idempotent; a no-op when the
// connection already disconnected (join can race teardown).
func (h *Hub) Join(connID, roomKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cl, exists := h.clients[connID]
	if !exists {
		return
	}
	members, ok := h.rooms[roomKey]
	if !ok {
		members = make(map[string]struct{})
		h.rooms[roomKey] = members
	}
	members[connID] = struct{}{}
	cl.rooms[roomKey] = struct{}{}
}

// Leave unsubscribes a connection from a room. No error if not a member.
func (h *Hub) Leave(connID, roomKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[roomKey]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomKey)
		}
	}
	if cl, ok := h.clients[connID]; ok {
		delete(cl.rooms, roomKey)
	}
}

// LeaveAll removes a connection from every room it belongs to. Safe to call
// for a connection that never joined anything.
func (h *Hub) LeaveAll(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cl, ok := h.clients[connID]; ok {
		h.removeFromRoomsLocked(cl)
	}
}

func (h *Hub) removeFromRoomsLocked(cl *client) {
	for roomKey := range cl.rooms {
		if members, ok := h.rooms[roomKey]; ok {
			delete(members, cl.id)
			if len(members) == 0 {
				delete(h.rooms, roomKey)
			}
		}
	}
	cl.rooms = make(map[string]struct{})
}

// Members returns the connection IDs currently subscribed to a room. An
// unknown room yields an empty slice, never an error.
func (h *Hub) Members(roomKey string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := h.rooms[roomKey]
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish delivers raw event bytes to every connection in the room at this
// instant. Delivery is best-effort per connection: a full queue drops the
// event for that connection only, and nothing is reported to the caller.
func (h *Hub) Publish(roomKey string, data []byte) {
	h.mu.RLock()
	members := make([]*client, 0, len(h.rooms[roomKey]))
	for id := range h.rooms[roomKey] {
		if cl, ok := h.clients[id]; ok {
			members = append(members, cl)
		}
	}
	h.mu.RUnlock()

	for _, cl := range members {
		select {
		case cl.send <- data:
		default:
			log.Printf("Dropping event for slow connection %s in room %s", cl.id, roomKey)
		}
	}
}

// SendTo queues data for a single connection. Used for direct replies such
// as error responses and pongs.
func (h *Hub) SendTo(connID string, data []byte) {
	h.mu.RLock()
	cl, exists := h.clients[connID]
	h.mu.RUnlock()

	if !exists {
		return
	}
	select {
	case cl.send <- data:
	default:
		log.Printf("Dropping direct message for slow connection %s", connID)
	}
}

// writePump is the single writer for one connection. It drains the send
// queue and keeps the connection alive with periodic pings.
func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case <-cl.done:
			return
		case data := <-cl.send:
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("Write failed for connection %s: %v", cl.id, err)
				h.Unregister(cl.id)
				return
			}
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(h.writeWait)); err != nil {
				log.Printf("Ping failed for connection %s: %v", cl.id, err)
				h.Unregister(cl.id)
				return
			}
		}
	}
}
