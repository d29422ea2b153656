package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Vasu1712/hackmate-backend/internal/notify"
)

// ErrHubStopped is returned once Run has exited.
var ErrHubStopped = errors.New("websocket hub stopped")

type Client struct {
	UserID string
	Send   chan []byte
	Conn   *websocket.Conn // interface for Gorilla/WebSocket
}

// Hub tracks the open event streams of each user and fans events out to them.
type Hub struct {
	Clients    map[string]map[*Client]bool // userID -> clients
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan BroadcastMessage
	mu         sync.RWMutex
	done       chan struct{}
	log        zerolog.Logger
}

type BroadcastMessage struct {
	UserID string
	Data   []byte
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		Clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan BroadcastMessage),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "ws-hub").Logger(),
	}
}

// Run serves register, unregister and broadcast requests until ctx is cancelled.
// On exit every client's Send channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for userID, clients := range h.Clients {
				for client := range clients {
					close(client.Send)
				}
				delete(h.Clients, userID)
			}
			h.mu.Unlock()
			h.log.Info().Msg("hub stopped")
			return
		case client := <-h.Register:
			h.mu.Lock()
			if h.Clients[client.UserID] == nil {
				h.Clients[client.UserID] = make(map[*Client]bool)
			}
			h.Clients[client.UserID][client] = true
			h.mu.Unlock()
			h.log.Debug().Str("user_id", client.UserID).Msg("client registered")
		case client := <-h.Unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			h.log.Debug().Str("user_id", client.UserID).Msg("client unregistered")
		case msg := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.Clients[msg.UserID] {
				select {
				case client.Send <- msg.Data:
				default:
					h.log.Warn().Str("user_id", client.UserID).Msg("client too slow, dropping")
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove deletes client and closes its Send channel. Caller must hold h.mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.Clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.Clients, client.UserID)
	}
}

// Attach registers client with the running hub.
func (h *Hub) Attach(client *Client) error {
	select {
	case h.Register <- client:
		return nil
	case <-h.done:
		return ErrHubStopped
	}
}

// Detach unregisters client. It is a no-op once the hub has stopped.
func (h *Hub) Detach(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// Notify implements notify.Notifier for the users connected to this process.
func (h *Hub) Notify(ctx context.Context, userIDs []string, ev notify.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	for _, id := range lo.Uniq(userIDs) {
		select {
		case h.Broadcast <- BroadcastMessage{UserID: id, Data: data}:
		case <-h.done:
			return ErrHubStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// ClientCount returns the number of open streams for userID.
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients[userID])
}
