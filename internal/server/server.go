package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wifimon/internal/config"
	"github.com/muurk/wifimon/internal/logging"
	"github.com/muurk/wifimon/internal/tracker"
)

// Config holds the API server configuration
type Config struct {
	ListenAddr string
	CertPath   string // Path to TLS certificate (optional)
	KeyPath    string // Path to TLS private key (optional)
	Interface  string // Scan interface name, reported by /api/status
}

// Server exposes the device tracker over HTTP and WebSocket. It holds the
// tracker by reference; it never owns or mutates the device table beyond
// the settings operations the tracker itself provides.
type Server struct {
	config   *Config
	tracker  *tracker.Tracker
	settings *config.Settings // write-through persistence target, may be nil
	httpSrv  *http.Server
}

// New creates a new Server instance around an existing tracker. Settings
// may be nil; when present, accepted settings changes are written through
// to it. Logging is the caller's concern; New never reconfigures the
// global logger.
func New(cfg *Config, tr *tracker.Tracker, settings *config.Settings) (*Server, error) {
	if tr == nil {
		return nil, fmt.Errorf("server requires a tracker")
	}

	s := &Server{
		config:   cfg,
		tracker:  tr,
		settings: settings,
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // WebSocket connections are long-lived
	}
	return s, nil
}

// Handler returns the routed HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/devices", s.handleDevices)
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("POST /api/settings", s.handleUpdateSettings)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/ws", s.handleWebSocket)
	return s.logRequests(mux)
}

// logRequests wraps the mux with structured request logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// Start starts the tracker's scan loop and the HTTP server, blocking until
// a shutdown signal arrives or the listener fails. TLS is used when both
// cert and key paths are configured.
func (s *Server) Start() error {
	s.tracker.Start()
	defer s.tracker.Stop()

	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.config.CertPath != "" && s.config.KeyPath != "" {
			logging.Info("Starting wifimon API server (TLS)",
				zap.String("addr", s.config.ListenAddr),
				zap.String("cert", s.config.CertPath),
			)
			err = s.httpSrv.ListenAndServeTLS(s.config.CertPath, s.config.KeyPath)
		} else {
			logging.Info("Starting wifimon API server",
				zap.String("addr", s.config.ListenAddr),
			)
			err = s.httpSrv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logging.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logging.Info("Server stopped")
	return nil
}
