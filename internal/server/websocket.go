package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/tickcore/internal/core/observability/log"
)

// client is one connected spectator. Frames are queued on send and written
// by a dedicated goroutine so a slow socket never blocks the tick loop.
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

func (c *client) writeLoop(timeout time.Duration, logger log.Log) {
	defer func() { _ = c.conn.Close() }()

	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Debug("Spectator write failed", log.String("remote", c.conn.RemoteAddr().String()), log.Error(err))
			return
		}
	}

	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(timeout),
	)
}

func (s *Spectator) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Spectator upgrade failed", log.String("remote", r.RemoteAddr), log.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, s.config.SendBuffer)}
	s.register(c)
	go c.writeLoop(s.config.WriteTimeout, s.logger)

	defer s.unregister(c)
	// Spectators only listen. Reading keeps control frames flowing and tells
	// us when the peer goes away.
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Spectator) register(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[c] = struct{}{}
	if s.last != nil {
		c.send <- s.last
	}
	s.logger.Info("Spectator connected",
		log.String("remote", c.conn.RemoteAddr().String()),
		log.Int("clients", len(s.clients)))
}

func (s *Spectator) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	c.close()
	s.logger.Info("Spectator disconnected",
		log.String("remote", c.conn.RemoteAddr().String()),
		log.Int("clients", len(s.clients)))
}
