// Package web serves the hotkey dashboard: a small JSON API, a
// websocket feed of dispatched hotkeys, and the embedded UI.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ccxla/3RVX/internal/dispatch"
	"github.com/ccxla/3RVX/internal/history"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Local dashboard only
	},
}

// Config carries the server's collaborators.
type Config struct {
	Registry   *dispatch.Registry
	Dispatcher *dispatch.Dispatcher
	History    *history.Store // Optional - can be nil
	Port       int
	Logger     zerolog.Logger
}

// Server represents the web server.
type Server struct {
	registry   *dispatch.Registry
	dispatcher *dispatch.Dispatcher
	store      *history.Store
	port       int
	hub        *Hub
	log        zerolog.Logger
}

// NewServer creates a new web server.
func NewServer(cfg Config) *Server {
	hub := NewHub(cfg.Logger)
	go hub.Run()

	return &Server{
		registry:   cfg.Registry,
		dispatcher: cfg.Dispatcher,
		store:      cfg.History,
		port:       cfg.Port,
		hub:        hub,
		log:        cfg.Logger,
	}
}

// Handler returns the server's route table.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/hotkeys", s.handleHotkeys)
	mux.HandleFunc("/api/actions", s.handleActions)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/trigger", s.handleTrigger)
	mux.HandleFunc("/ws", s.handleWebSocket)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	return mux, nil
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: handler}

	s.log.Info().
		Int("port", s.port).
		Str("url", fmt.Sprintf("http://localhost:%d", s.port)).
		Msg("Starting web server")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// BroadcastEvent pushes a dispatched hotkey to connected dashboards.
func (s *Server) BroadcastEvent(ev dispatch.Event) {
	s.hub.BroadcastMessage(Message{
		Type: MessageTypeEvent,
		Data: EventMessage{
			At:     ev.At.Format(time.RFC3339),
			Combo:  ev.Combo.String(),
			Action: ev.Action.String(),
			Args:   append([]string{}, ev.Args...),
			OK:     ev.OK,
			Detail: ev.Detail,
		},
	})
}

// handleWebSocket handles WebSocket connections.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
