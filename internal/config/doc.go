// Package config provides user configuration management for the wifimon
// project.
//
// This package manages a YAML-based configuration file that stores monitor
// tuning (scan interval, distance threshold, interface) and API server
// preferences. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/wifimon/config.yaml or $HOME/.config/wifimon/config.yaml
//   - macOS: $HOME/.config/wifimon/config.yaml
//   - Windows: %LOCALAPPDATA%\wifimon\config.yaml
//
// # What Is (and Is Not) Stored
//
// Only operator preferences live in this file. Device observation history
// (signal readings, last-seen timestamps, distances) is held in memory by
// the tracker and is intentionally lost on restart.
//
// # Clamping
//
// The two runtime-adjustable values are clamped on every write path:
// scan_interval to [1, 60] seconds and distance_threshold to [1, 100]
// metres. A hand-edited out-of-range file is clamped on load.
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex and saves are
// atomic (write to temp file, then rename).
package config
