package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the server is only reachable on the device itself
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the debug http server. Status returns the latest snapshot stored
// with SetStatus, /ws streams every broadcast message.
type Server struct {
	hub    *Hub
	status atomic.Value
}

func NewServer() *Server {
	s := &Server{hub: NewHub()}
	s.status.Store([]byte("{}"))
	return s
}

// Start runs the server in the background. Listen failures are logged, not
// fatal, the daemon works without its debug surface.
func (s *Server) Start(port int) {
	go s.hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/status", s.serveStatus)

	addr := fmt.Sprintf(":%d", port)
	go func() {
		slog.Info("debug server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("debug server stopped", "error", err)
		}
	}()
}

// Broadcast sends the value as JSON to all websocket clients and stores it as
// the current status snapshot.
func (s *Server) Broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("could not marshal debug output", "error", err)
		return
	}
	s.status.Store(b)
	s.hub.Broadcast(b)
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	client := &Client{hub: s.hub, conn: conn, send: make(chan []byte, 64)}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (s *Server) serveStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.status.Load().([]byte))
}
