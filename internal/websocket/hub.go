// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/photomap/internal/logging"
	"github.com/tomtom215/photomap/internal/metrics"
)

// Message types exchanged with the browser.
const (
	MessageTypeReload     = "reload"
	MessageTypePlaceAdded = "place_added"
	MessageTypePing       = "ping"
	MessageTypePong       = "pong"
)

// broadcastBuffer is the hub queue depth.
const broadcastBuffer = 256

// Message is the JSON frame sent to clients.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks connected clients and broadcasts messages to all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	done     chan struct{}
	doneOnce sync.Once
}

// NewHub creates a hub. Call RunWithContext before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Done is closed once the hub has stopped. Senders on Register and
// Unregister select on it so they never block on a stopped hub.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// RunWithContext processes registrations and broadcasts until ctx is done,
// then closes every client and returns ctx.Err().
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		// Membership changes go first so a broadcast never targets a client
		// that has already asked to leave.
		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			count := h.ClientCount()
			h.closeAllClients()
			h.doneOnce.Do(func() { close(h.done) })
			reason := "context_canceled"
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				reason = "context_deadline"
			}
			logging.WithComponent(logging.ComponentHub).Info().
				Str("reason", reason).
				Int("clients_closed", count).
				Msg("websocket hub stopped")
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(total))
	logging.WithComponent(logging.ComponentHub).Info().Uint64("client_id", client.id).Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.outbox)
	}
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Set(float64(total))
	logging.WithComponent(logging.ComponentHub).Info().Uint64("client_id", client.id).Int("total_clients", total).Msg("websocket client disconnected")
}

// broadcastToClients delivers in client ID order and drops clients whose buffer is full.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.sortedClientsLocked()
	for _, client := range clients {
		select {
		case client.outbox <- message:
		default:
			close(client.outbox)
			delete(h.clients, client)
			logging.WithComponent(logging.ComponentHub).Warn().Uint64("client_id", client.id).Msg("websocket client too slow, disconnected")
		}
	}
	metrics.WSConnections.Set(float64(len(h.clients)))
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClientsLocked() {
		close(client.outbox)
		delete(h.clients, client)
	}
	metrics.WSConnections.Set(0)
}

func (h *Hub) sortedClientsLocked() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// Broadcast queues a message for every client without blocking.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
		metrics.WSMessagesSent.WithLabelValues(messageType).Inc()
	default:
		logging.WithComponent(logging.ComponentHub).Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
