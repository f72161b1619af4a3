package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muurk/wifimon/internal/arpscan"
	"github.com/muurk/wifimon/internal/logging"
	"github.com/muurk/wifimon/internal/tracker"
)

// staticRadio always reports the same neighbourhood.
type staticRadio struct {
	readings map[string]float64
}

func (s *staticRadio) Scan(ctx context.Context) (map[string]float64, error) {
	return s.readings, nil
}

type emptyAddresses struct{}

func (emptyAddresses) Sweep(ctx context.Context) ([]arpscan.Neighbor, error) {
	return nil, nil
}

type noopIdentity struct{}

func (noopIdentity) Resolve(mac, hostname string) (string, string) {
	return "", "Unknown Device"
}

func (noopIdentity) LookupHostname(ctx context.Context, ip string) string {
	return ""
}

func newTestServer(t *testing.T) (*Server, *tracker.Tracker) {
	t.Helper()

	tr := tracker.New(tracker.Config{
		Radio:             &staticRadio{readings: map[string]float64{"AA:BB:CC:DD:EE:FF": -80}},
		Addresses:         emptyAddresses{},
		Identity:          noopIdentity{},
		ScanInterval:      2,
		DistanceThreshold: 30,
	})
	tr.Scan(context.Background())

	srv, err := New(&Config{ListenAddr: "127.0.0.1:0", Interface: "wlan0"}, tr, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv, tr
}

func TestHandleDevices(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/devices status = %d, want 200", rec.Code)
	}

	var devices map[string]tracker.DeviceInfo
	if err := json.NewDecoder(rec.Body).Decode(&devices); err != nil {
		t.Fatalf("decode error = %v", err)
	}

	info, ok := devices["Device (AA:BB:CC:DD:EE:FF)"]
	if !ok {
		t.Fatalf("device missing from payload: %v", devices)
	}
	if info.Distance != 10.0 {
		t.Errorf("distance = %v, want 10.0", info.Distance)
	}
	if info.MAC != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("mac = %v, want AA:BB:CC:DD:EE:FF", info.MAC)
	}
}

func TestHandleDevices_RespectsThreshold(t *testing.T) {
	srv, tr := newTestServer(t)

	// At a 5 m threshold the 10 m device disappears.
	tr.UpdateSettings(2, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var devices map[string]tracker.DeviceInfo
	if err := json.NewDecoder(rec.Body).Decode(&devices); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("payload has %d devices, want 0 beyond threshold", len(devices))
	}
}

func TestHandleGetSettings(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/settings status = %d, want 200", rec.Code)
	}

	var payload settingsPayload
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if payload.ScanInterval == nil || *payload.ScanInterval != 2 {
		t.Errorf("scan_interval = %v, want 2", payload.ScanInterval)
	}
	if payload.DistanceThreshold == nil || *payload.DistanceThreshold != 30 {
		t.Errorf("distance_threshold = %v, want 30", payload.DistanceThreshold)
	}
}

func TestHandleUpdateSettings(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantStatus    int
		wantInterval  int
		wantThreshold float64
	}{
		{
			name:          "both fields",
			body:          `{"scan_interval": 10, "distance_threshold": 25}`,
			wantStatus:    http.StatusOK,
			wantInterval:  10,
			wantThreshold: 25,
		},
		{
			name:          "clamped interval",
			body:          `{"scan_interval": 120, "distance_threshold": 5}`,
			wantStatus:    http.StatusOK,
			wantInterval:  60,
			wantThreshold: 5,
		},
		{
			name:          "partial update keeps other value",
			body:          `{"distance_threshold": 50}`,
			wantStatus:    http.StatusOK,
			wantInterval:  2,
			wantThreshold: 50,
		},
		{
			name:          "non-numeric interval rejected",
			body:          `{"scan_interval": "fast"}`,
			wantStatus:    http.StatusBadRequest,
			wantInterval:  2,
			wantThreshold: 30,
		},
		{
			name:          "empty body rejected",
			body:          `{}`,
			wantStatus:    http.StatusBadRequest,
			wantInterval:  2,
			wantThreshold: 30,
		},
		{
			name:          "unknown field rejected",
			body:          `{"scan_interval": 10, "bogus": true}`,
			wantStatus:    http.StatusBadRequest,
			wantInterval:  2,
			wantThreshold: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, tr := newTestServer(t)

			req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("POST /api/settings status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}

			interval, threshold := tr.Settings()
			if interval != tt.wantInterval {
				t.Errorf("stored scan interval = %v, want %v", interval, tt.wantInterval)
			}
			if threshold != tt.wantThreshold {
				t.Errorf("stored distance threshold = %v, want %v", threshold, tt.wantThreshold)
			}
		})
	}
}

func TestHandleStatus(t *testing.T) {
	srv, tr := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/status status = %d, want 200", rec.Code)
	}

	var payload statusPayload
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if payload.Running {
		t.Error("running = true, want false before Start")
	}
	if payload.DeviceCount != tr.DeviceCount() {
		t.Errorf("device_count = %d, want %d", payload.DeviceCount, tr.DeviceCount())
	}
	if payload.Interface != "wlan0" {
		t.Errorf("interface = %q, want wlan0", payload.Interface)
	}
}

func TestHandleDevices_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/devices", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/devices status = %d, want 405", rec.Code)
	}
}

func TestNew_LeavesGlobalLoggerAlone(t *testing.T) {
	// The serve command configures logging once at startup; constructing
	// a server afterwards must not swap the logger out from under it.
	if err := logging.Initialize("error"); err != nil {
		t.Fatalf("logging.Initialize() error = %v", err)
	}
	before := logging.GetLogger()

	_, tr := newTestServer(t)
	if _, err := New(&Config{ListenAddr: "127.0.0.1:0"}, tr, nil); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if logging.GetLogger() != before {
		t.Error("New() replaced the global logger")
	}
}
