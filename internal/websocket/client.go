// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/photomap/internal/logging"
)

// Timing for a map page subscription. The page never sends data of its own
// apart from an application-level ping, so inbound frames stay small.
const (
	frameWriteTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	keepAliveInterval = idleTimeout * 9 / 10
	maxInboundFrame   = 4 * 1024
	outboxSize        = 32
)

var nextClientID atomic.Uint64

// Client is one open map page waiting for reload and place_added events.
//
// The hub owns outbox: it is the only writer and closes it when the client
// leaves, which makes deliver send a close frame and stop.
type Client struct {
	id     uint64
	hub    *Hub
	conn   *websocket.Conn
	outbox chan Message
}

// NewClient wraps an upgraded connection. Register it with the hub, then Start it.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:     nextClientID.Add(1),
		hub:    hub,
		conn:   conn,
		outbox: make(chan Message, outboxSize),
	}
}

// ID is unique within the process.
func (c *Client) ID() uint64 {
	return c.id
}

// Start runs the delivery and receive loops in their own goroutines.
func (c *Client) Start() {
	go c.deliver()
	go c.receive()
}

func (c *Client) logger() *zerolog.Logger {
	l := logging.WithComponent(logging.ComponentHub).With().Uint64("client_id", c.id).Logger()
	return &l
}

// receive reads until the page goes away, then leaves the hub.
func (c *Client) receive() {
	defer c.leave()

	c.conn.SetReadLimit(maxInboundFrame)
	extend := func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	}
	if err := extend(""); err != nil {
		c.logger().Error().Err(err).Msg("websocket read deadline not set")
		return
	}
	c.conn.SetPongHandler(extend)

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger().Warn().Err(err).Msg("map page connection dropped")
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(frame, &msg); err != nil {
			c.logger().Debug().Err(err).Msg("ignoring malformed frame")
			continue
		}
		if msg.Type == MessageTypePing {
			c.reply(Message{Type: MessageTypePong})
		}
	}
}

// reply queues msg unless the outbox is full; a page that is not draining
// events does not need a pong either.
func (c *Client) reply(msg Message) {
	select {
	case c.outbox <- msg:
	default:
	}
}

func (c *Client) leave() {
	select {
	case c.hub.Unregister <- c:
	case <-c.hub.Done():
	}
	_ = c.conn.Close()
}

// deliver writes hub events to the page and pings it while it is quiet.
func (c *Client) deliver() {
	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	defer c.conn.Close()

	for {
		select {
		case msg, open := <-c.outbox:
			if !open {
				_ = c.write(websocket.CloseMessage, nil)
				return
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				c.logger().Error().Err(err).Str("message_type", msg.Type).Msg("event not encodable")
				continue
			}
			if err := c.write(websocket.TextMessage, payload); err != nil {
				c.logger().Debug().Err(err).Msg("event write failed")
				return
			}
		case <-keepAlive.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(frameType int, payload []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(frameWriteTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(frameType, payload)
}
