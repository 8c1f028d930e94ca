// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devtools serves a read-only, live view of an App's entity
// store and open windows over a websocket, the out-of-process
// counterpart to the teacher's in-process Inspector (core/inspector.go,
// a Tree+Form widget pair editing a live Scene's tree) — since this
// runtime has no widget tree to embed an inspector panel into, the
// same "live view of running state" capability is exposed remotely
// instead.
package devtools

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/reactivecore/core/core"
)

// Server serves /inspect, upgrading each connection to a websocket that
// receives one JSON core.Snapshot per poll interval until the client
// disconnects or the Server is closed.
type Server struct {
	app      *core.App
	upgrader websocket.Upgrader
	interval time.Duration

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer returns a Server polling app's Snapshot every interval
// (defaulting to 250ms if interval <= 0) for each connected client.
func NewServer(app *core.App, interval time.Duration) *Server {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Server{
		app:      app,
		interval: interval,
		clients:  map[*websocket.Conn]struct{}{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Devtools is a local debugging aid, not a public endpoint;
			// any origin is accepted the way the teacher's own local
			// dev tooling has no CORS-equivalent restriction either.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request to a websocket and streams snapshots
// to it until the connection closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("devtools: upgrade failed", slog.Any("err", err))
		return
	}
	s.addClient(conn)
	defer s.removeClient(conn)

	s.readLoop(conn)
}

// readLoop drains incoming control/close frames so the websocket
// library's ping/pong keepalive works, discarding any application data
// since this endpoint is send-only.
func (s *Server) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) addClient(conn *websocket.Conn) {
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeClient(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Run polls app's Snapshot every interval and broadcasts it to every
// connected client until ctx is done.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			s.broadcast(s.app.Snapshot())
		}
	}
}

func (s *Server) broadcast(snap core.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		slog.Warn("devtools: marshal snapshot failed", slog.Any("err", err))
		return
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			s.removeClient(c)
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.Close()
		delete(s.clients, c)
	}
}
