package config

// Settings represents the entire user configuration file.
// This stores monitor tuning and server preferences for the wifimon tools.
type Settings struct {
	Version int      `yaml:"version"`
	Monitor *Monitor `yaml:"monitor,omitempty"`
	Server  *Server  `yaml:"server,omitempty"`
}

// Monitor represents the device tracking settings.
// ScanInterval and DistanceThreshold are the two runtime-adjustable knobs;
// they are clamped on every write (see Clamp functions below).
type Monitor struct {
	Interface         string  `yaml:"interface,omitempty"`   // Network interface to scan (empty = auto-detect)
	ScanInterval      int     `yaml:"scan_interval"`         // Seconds between scan cycles (1-60)
	DistanceThreshold float64 `yaml:"distance_threshold"`    // Max distance in metres for snapshots (1-100)
	LogLevel          string  `yaml:"log_level,omitempty"`   // Logging verbosity (debug/info/warn/error)
}

// Server represents the API server preferences.
type Server struct {
	ListenAddr string `yaml:"listen_addr"`        // Address the HTTP API binds to
	CertPath   string `yaml:"cert_path,omitempty"` // TLS certificate (optional)
	KeyPath    string `yaml:"key_path,omitempty"`  // TLS private key (optional)
}

// Clamp limits for the runtime-adjustable settings.
const (
	MinScanInterval      = 1
	MaxScanInterval      = 60
	MinDistanceThreshold = 1.0
	MaxDistanceThreshold = 100.0
)

// Defaults applied when no configuration file exists.
const (
	DefaultScanInterval      = 2
	DefaultDistanceThreshold = 30.0
	DefaultListenAddr        = "127.0.0.1:8450"
)

// ClampScanInterval bounds a scan interval to the supported [1, 60] second
// range.
func ClampScanInterval(seconds int) int {
	if seconds < MinScanInterval {
		return MinScanInterval
	}
	if seconds > MaxScanInterval {
		return MaxScanInterval
	}
	return seconds
}

// ClampDistanceThreshold bounds a distance threshold to the supported
// [1, 100] metre range.
func ClampDistanceThreshold(metres float64) float64 {
	if metres < MinDistanceThreshold {
		return MinDistanceThreshold
	}
	if metres > MaxDistanceThreshold {
		return MaxDistanceThreshold
	}
	return metres
}

// NewSettings creates a new Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Monitor: &Monitor{
			ScanInterval:      DefaultScanInterval,
			DistanceThreshold: DefaultDistanceThreshold,
		},
		Server: &Server{
			ListenAddr: DefaultListenAddr,
		},
	}
}
