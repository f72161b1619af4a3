package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/wifimon/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The API is same-host operator tooling, not a browser-facing service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// writeTimeout bounds one WebSocket write so a dead client cannot wedge
// the push loop.
const writeTimeout = 5 * time.Second

// handleWebSocket upgrades the connection and pushes the device snapshot
// every scan interval until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	defer conn.Close()

	logging.Info("WebSocket client connected", zap.String("remote_addr", r.RemoteAddr))

	// Drain reads so close frames and pings are processed; the feed is
	// push-only.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		interval, threshold := s.tracker.Settings()

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(s.tracker.Snapshot(threshold)); err != nil {
			logging.Info("WebSocket client disconnected",
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-time.After(time.Duration(interval) * time.Second):
		}
	}
}
