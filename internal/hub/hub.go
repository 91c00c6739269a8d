package hub

import (
	"encoding/json"
	"sync"
)

// Event types multicast to a room.
const (
	EventMemberList  = "memberList"  // membership changed
	EventFinalList   = "finalList"   // match result payload
	EventRefreshList = "refreshList" // tells clients to reload their view
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single client connection (a user in a room).
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub manages all active rooms and their clients.
type Hub struct {
	rooms map[string]map[Client]bool
	mu    sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a new client to a specific room.
func (h *Hub) Subscribe(roomNumber string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomNumber]; !ok {
		h.rooms[roomNumber] = make(map[Client]bool)
	}
	h.rooms[roomNumber][client] = true
}

// Unsubscribe removes a client from a room.
func (h *Hub) Unsubscribe(roomNumber string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[roomNumber]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.rooms, roomNumber)
			}
		}
	}
}

// Broadcast sends an event to all clients in a specific room.
func (h *Hub) Broadcast(roomNumber string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.rooms[roomNumber]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
