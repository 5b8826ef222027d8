// Package devserver serves generated extension modules over HTTP during
// development and pushes a reload signal over a websocket whenever the
// manifests change, so a connected editor can re-fetch the module without a
// manual round trip.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Server hosts the artifact directory and the reload channel.
type Server struct {
	logger   *slog.Logger
	dir      string
	regen    func(context.Context) error
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	httpServer *http.Server
}

// New creates a dev server serving the given artifact directory. regen is
// invoked before each reload broadcast to rebuild the artifacts.
func New(logger *slog.Logger, dir string, regen func(context.Context) error) *Server {
	return &Server{
		logger: logger,
		dir:    dir,
		regen:  regen,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// ListenAndServe runs the HTTP server until ctx is cancelled. The watch
// callback is wired separately via Watch; this call blocks.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.dir)))
	mux.HandleFunc("/reload", s.handleReload)

	addr := fmt.Sprintf(":%d", port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Dev server shutdown failed", "error", err)
		}
	}()

	s.logger.Info("Dev server starting", "address", fmt.Sprintf("http://localhost%s/", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleReload upgrades the connection and parks it until the peer goes
// away. Clients never send anything meaningful; the read loop only exists
// to notice the close.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	s.logger.Debug("Reload client connected.", "remote_addr", r.RemoteAddr)

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// drop unregisters and closes one connection.
func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}

// broadcastReload tells every connected client to re-fetch the module.
func (s *Server) broadcastReload() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			s.logger.Debug("Dropping stale reload client.", "error", err)
			s.drop(conn)
		}
	}
	s.logger.Info("Reload broadcast sent.", "clients", len(conns))
}
