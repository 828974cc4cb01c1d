package wsnotify

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"contacts-api/internal/models"
)

type WebSocketManager struct {
	clients map[*websocket.Conn]bool
	lock    sync.RWMutex
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func Upgrader() *websocket.Upgrader {
	return &upgrader
}

var Manager = &WebSocketManager{
	clients: make(map[*websocket.Conn]bool),
}

func (m *WebSocketManager) AddClient(conn *websocket.Conn) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[conn] = true
}

func (m *WebSocketManager) RemoveClient(conn *websocket.Conn) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.clients, conn)
}

func (m *WebSocketManager) Broadcast(event interface{}) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	for client := range m.clients {
		client.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := client.WriteJSON(event); err != nil {
			client.Close()
			go m.RemoveClient(client)
		}
	}
}

const (
	ContactCreated = "contact_created"
	ContactUpdated = "contact_updated"
	ContactDeleted = "contact_deleted"
)

type ContactPayload struct {
	ID          int     `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Birthday    string  `json:"birthday"`
	ExtraData   *string `json:"extraData"`
	OccurredAt  string  `json:"occurredAt"`
}

type ContactEvent struct {
	Type    string         `json:"type"`
	Payload ContactPayload `json:"payload"`
}

func SendContactEvent(eventType string, contact *models.Contact) {
	payload := ContactPayload{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		Birthday:    contact.Birthday.String(),
		ExtraData:   contact.ExtraData,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	event := ContactEvent{
		Type:    eventType,
		Payload: payload,
	}
	Manager.Broadcast(event)
}

type DeletedPayload struct {
	ID         int    `json:"id"`
	OccurredAt string `json:"occurredAt"`
}

type DeletedEvent struct {
	Type    string         `json:"type"`
	Payload DeletedPayload `json:"payload"`
}

func SendContactDeletedEvent(id int) {
	event := DeletedEvent{
		Type: ContactDeleted,
		Payload: DeletedPayload{
			ID:         id,
			OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	Manager.Broadcast(event)
}
