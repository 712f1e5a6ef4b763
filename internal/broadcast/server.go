// Package broadcast fans displayed frames out to WebSocket viewers.
package broadcast

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dkovacs/asciivid/internal/ascii"
	"github.com/dkovacs/asciivid/internal/encoder"
)

// Server serves the current playback as encoded frames over WebSocket at
// /watch. Viewers are read-only; a slow viewer drops frames rather than
// slowing playback down.
type Server struct {
	enc      encoder.Encoder
	upgrader websocket.Upgrader
	srv      *http.Server
	addr     net.Addr

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a broadcast server using the given frame encoder.
func NewServer(enc encoder.Encoder) *Server {
	return &Server{
		enc:     enc,
		clients: make(map[*client]struct{}),
	}
}

// Start listens on addr and serves viewers until Close.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("broadcast listen: %w", err)
	}
	s.addr = ln.Addr()
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", s.handleWatch)
	s.srv = &http.Server{Handler: mux}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("broadcast serve: %v", err)
		}
	}()
	log.Printf("broadcast: serving viewers on ws://%s/watch", ln.Addr())
	return nil
}

// Addr returns the bound listen address, valid after Start.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Publish encodes the frame once and queues it to every connected viewer.
func (s *Server) Publish(f *ascii.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return
	}
	data := s.enc.Encode(f)
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Viewer is behind; skip this frame for it.
		}
	}
}

// Close disconnects all viewers and stops the listener.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
	s.mu.Unlock()
	if s.srv != nil {
		s.srv.Close()
	}
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("broadcast upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 4)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("broadcast: viewer connected (%d total)", n)

	go s.writeLoop(c)
	go s.readLoop(c)
}

func (s *Server) writeLoop(c *client) {
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.drop(c)
			return
		}
	}
	c.conn.Close()
}

// readLoop discards viewer messages and notices disconnects.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			s.drop(c)
			return
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
	c.conn.Close()
	log.Printf("broadcast: viewer disconnected (%d total)", len(s.clients))
}
