package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/tickcore/internal/core/events/bus"
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/engine"
)

type Config struct {
	Addr            string
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// SendBuffer is how many frames may queue for one client before it is dropped.
	SendBuffer int
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		SendBuffer:      16,
	}
}

// Message is the JSON document sent to spectators for every frame.
type Message struct {
	Frame       uint64   `json:"frame"`
	Row         string   `json:"row"`
	Lines       []string `json:"lines"`
	Entities    int      `json:"entities"`
	Fingerprint uint64   `json:"fingerprint"`
}

// Spectator streams completed frames to websocket clients on /ws.
type Spectator struct {
	config   Config
	bus      bus.EventBus
	logger   log.Log
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	sub     bus.Subscription
	addr    net.Addr

	running int32 // atomic bool
}

func NewSpectator(config Config, eventBus bus.EventBus, logger log.Log) *Spectator {
	if logger == nil {
		logger = log.NewNop()
	}
	if config.SendBuffer <= 0 {
		config.SendBuffer = DefaultConfig().SendBuffer
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultConfig().WriteTimeout
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	return &Spectator{
		config: config,
		bus:    eventBus,
		logger: logger.With(log.String("component", "spectator")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler serves the websocket endpoint.
func (s *Spectator) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Attach subscribes to tick events. Calling it again is a no-op.
func (s *Spectator) Attach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return nil
	}
	sub, err := s.bus.Subscribe(engine.EventTickCompleted, s.onTick)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", engine.EventTickCompleted, err)
	}
	s.sub = sub
	return nil
}

// Detach stops listening for tick events.
func (s *Spectator) Detach() error {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()
	return s.bus.Unsubscribe(sub)
}

// Run listens on the configured address until ctx is done.
func (s *Spectator) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}
	defer atomic.StoreInt32(&s.running, 0)

	if err := s.Attach(); err != nil {
		return err
	}
	defer func() { _ = s.Detach() }()

	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}
	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	s.logger.Info("Spectator server started", log.String("addr", ln.Addr().String()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
		s.closeClients()
		<-serveErr
		s.logger.Info("Spectator server stopped")
		return err
	case err = <-serveErr:
		s.closeClients()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Spectator) Running() bool {
	return atomic.LoadInt32(&s.running) == 1
}

// Addr is the bound listener address, or nil before Run has started listening.
func (s *Spectator) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *Spectator) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Spectator) onTick(ev bus.Event) error {
	frame, ok := ev.Data().(engine.Frame)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEvent, ev.Data())
	}

	data, err := json.Marshal(Message{
		Frame:       frame.Number,
		Row:         frame.Screen.Row,
		Lines:       frame.Screen.Lines,
		Entities:    frame.Registry.Len(),
		Fingerprint: frame.Fingerprint,
	})
	if err != nil {
		return fmt.Errorf("marshal frame %d: %w", frame.Number, err)
	}

	s.broadcast(data)
	return nil
}

// broadcast queues data for every client, dropping those that fell behind.
func (s *Spectator) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			delete(s.clients, c)
			c.close()
			s.logger.Warn("Spectator too slow, dropped", log.String("remote", c.conn.RemoteAddr().String()))
		}
	}
}

func (s *Spectator) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		delete(s.clients, c)
		c.close()
	}
}
