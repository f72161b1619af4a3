package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/muurk/wifimon/internal/logging"
	"github.com/muurk/wifimon/internal/version"
)

// settingsPayload is the settings representation on the wire. Pointers
// allow partial updates; absent fields leave the current value unchanged.
type settingsPayload struct {
	ScanInterval      *int     `json:"scan_interval,omitempty"`
	DistanceThreshold *float64 `json:"distance_threshold,omitempty"`
}

// statusPayload is the /api/status response body.
type statusPayload struct {
	Running     bool   `json:"running"`
	Failed      bool   `json:"failed"`
	DeviceCount int    `json:"device_count"`
	Interface   string `json:"interface"`
	Version     string `json:"version"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleDevices returns the tracker snapshot at the current distance
// threshold.
func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	_, threshold := s.tracker.Settings()
	writeJSON(w, http.StatusOK, s.tracker.Snapshot(threshold))
}

// handleGetSettings returns the current scan interval and distance
// threshold.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	interval, threshold := s.tracker.Settings()
	writeJSON(w, http.StatusOK, settingsPayload{
		ScanInterval:      &interval,
		DistanceThreshold: &threshold,
	})
}

// handleUpdateSettings applies a partial settings update. Non-numeric
// values are rejected with 400 and leave tracker state unchanged; the
// response carries the clamped stored settings.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "settings must be numeric: "+err.Error())
		return
	}
	if payload.ScanInterval == nil && payload.DistanceThreshold == nil {
		writeError(w, http.StatusBadRequest, "no settings provided")
		return
	}

	interval, threshold := s.tracker.Settings()
	if payload.ScanInterval != nil {
		interval = *payload.ScanInterval
	}
	if payload.DistanceThreshold != nil {
		threshold = *payload.DistanceThreshold
	}

	interval, threshold = s.tracker.UpdateSettings(interval, threshold)
	s.persistSettings(interval, threshold)

	writeJSON(w, http.StatusOK, settingsPayload{
		ScanInterval:      &interval,
		DistanceThreshold: &threshold,
	})
}

// persistSettings writes accepted settings through to the YAML config so
// they survive a restart. Best effort: a save failure is logged, never
// surfaced to the API client.
func (s *Server) persistSettings(interval int, threshold float64) {
	if s.settings == nil || s.settings.Monitor == nil {
		return
	}
	s.settings.Monitor.ScanInterval = interval
	s.settings.Monitor.DistanceThreshold = threshold
	if err := s.settings.Save(); err != nil {
		logging.Warn("failed to persist settings", zap.Error(err))
	}
}

// handleStatus reports scheduler liveness and table size.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusPayload{
		Running:     s.tracker.Running(),
		Failed:      s.tracker.Failed(),
		DeviceCount: s.tracker.DeviceCount(),
		Interface:   s.config.Interface,
		Version:     version.Version,
	})
}
