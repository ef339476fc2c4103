// Package socket carries the real-time queue notifications between the
// role dashboards. Clients join rooms keyed hospitalId:department and get
// lightweight event broadcasts; they refetch the actual data over REST.
package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event names broadcast to room subscribers.
const (
	EventPatientRegistered   = "patient-registered"
	EventQueueMoved          = "queue-moved"
	EventPrescriptionUpdated = "prescription-updated"
	EventLabTestCreated      = "lab-test-created"
	EventLabStatusUpdated    = "lab-status-updated"
	EventError               = "error"
)

type Event struct {
	Event     string      `json:"event"`
	Room      string      `json:"room,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientMessage is an inbound frame from a dashboard client.
type ClientMessage struct {
	Action string   `json:"action"`
	Rooms  []string `json:"rooms"`
}

// Client is one connected dashboard.
type Client struct {
	ID    string
	Rooms []string
	Send  chan []byte
}

// Hub tracks connected clients and their room memberships. All operations
// are safe for concurrent use via the RWMutex.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	all   map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		all:   make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.all[client] = struct{}{}
	for _, room := range client.Rooms {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*Client]struct{})
		}
		h.rooms[room][client] = struct{}{}
	}
}

// Unregister drops the client from every room and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[client]; !ok {
		return
	}
	for _, room := range client.Rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	delete(h.all, client)
	close(client.Send)
}

func (h *Hub) Join(client *Client, rooms []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range rooms {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*Client]struct{})
		}
		h.rooms[room][client] = struct{}{}
	}
	client.Rooms = append(client.Rooms, rooms...)
}

func (h *Hub) Leave(client *Client, rooms []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	removeSet := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		removeSet[r] = struct{}{}
	}
	for _, room := range rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	remaining := make([]string, 0, len(client.Rooms))
	for _, r := range client.Rooms {
		if _, rm := removeSet[r]; !rm {
			remaining = append(remaining, r)
		}
	}
	client.Rooms = remaining
}

func (h *Hub) ProcessMessage(client *Client, msg ClientMessage) {
	switch msg.Action {
	case "join":
		h.Join(client, msg.Rooms)
	case "leave":
		h.Leave(client, msg.Rooms)
	}
}

// Broadcast sends the event to every client in the room. A client whose
// buffer is full is skipped rather than blocked on.
func (h *Hub) Broadcast(room string, event Event) {
	event.Room = room
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	buf, err := json.Marshal(event)
	if err != nil {
		log.Println("Error while marshalling socket event:", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[room]
	if !ok {
		return
	}
	for client := range members {
		select {
		case client.Send <- buf:
		default:
		}
	}
}

// SendTo delivers an event to a single client, used for error replies back
// to the originating dashboard.
func (h *Hub) SendTo(client *Client, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	buf, err := json.Marshal(event)
	if err != nil {
		log.Println("Error while marshalling socket event:", err)
		return
	}
	select {
	case client.Send <- buf:
	default:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

func (h *Hub) RoomCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Room builds the room name for a hospital department dashboard.
func Room(hospitalId, department string) string {
	return hospitalId + ":" + department
}

// package level hub so services can emit without plumbing a handle through
// every call chain
var defaultHub = NewHub()

func DefaultHub() *Hub {
	return defaultHub
}

// Emit broadcasts an event to a room on the default hub.
func Emit(room, event string, data interface{}) {
	defaultHub.Broadcast(room, Event{Event: event, Data: data})
}
