// Package feedhub fans complaint events out to connected administrator
// sessions so the management view updates without polling. Events originate
// on a Redis Pub/Sub channel, which lets several server instances share one
// feed.
package feedhub

import (
	"encoding/json"
	"log"

	"cityvoice/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// EventSource provides the Redis subscription the hub listens on.
type EventSource interface {
	SubscribeComplaintEvents() *redis.PubSub
}

// Manager owns the set of connected clients and the event loop.
type Manager struct {
	Clients map[Client]bool

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventsCh     chan models.ComplaintEvent

	Source EventSource
}

// NewManager creates a hub wired to the given event source.
func NewManager(source EventSource) *Manager {
	return &Manager{
		Clients:      make(map[Client]bool),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventsCh:     make(chan models.ComplaintEvent),
		Source:       source,
	}
}

// Run is the hub's main loop. It owns the Clients map; all mutation happens
// on this goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client] = true
			log.Printf("INFO: Feed client registered for user %s (%d connected)", client.GetUserID(), len(m.Clients))

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client]; ok {
				delete(m.Clients, client)
				client.Close()
			}

		case evt := <-m.EventsCh:
			m.broadcast(evt)
		}
	}
}

// broadcast delivers an event to every connected client. A client whose send
// buffer is full is considered dead and dropped.
func (m *Manager) broadcast(evt models.ComplaintEvent) {
	for client := range m.Clients {
		select {
		case client.GetSendChannel() <- evt:
		default:
			delete(m.Clients, client)
			client.Close()
		}
	}
}

// StartPubSubListener launches the goroutine that relays Redis feed messages
// into the hub's event channel.
func (m *Manager) StartPubSubListener() {
	go func() {
		pubsub := m.Source.SubscribeComplaintEvents()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var evt models.ComplaintEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("ERROR: Failed to decode feed event: %v", err)
				continue
			}
			m.EventsCh <- evt
		}
	}()
}
