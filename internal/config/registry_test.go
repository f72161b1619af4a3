package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "wifimon") {
		t.Errorf("GetConfigDir() = %v, should contain 'wifimon'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}

	if s.Monitor == nil {
		t.Fatal("NewSettings().Monitor should not be nil")
	}

	if s.Monitor.ScanInterval != DefaultScanInterval {
		t.Errorf("NewSettings().Monitor.ScanInterval = %v, want %v", s.Monitor.ScanInterval, DefaultScanInterval)
	}

	if s.Monitor.DistanceThreshold != DefaultDistanceThreshold {
		t.Errorf("NewSettings().Monitor.DistanceThreshold = %v, want %v", s.Monitor.DistanceThreshold, DefaultDistanceThreshold)
	}

	if s.Server == nil || s.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("NewSettings().Server.ListenAddr should default to %v", DefaultListenAddr)
	}
}

func TestClampScanInterval(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "below minimum", input: 0, expected: 1},
		{name: "negative", input: -5, expected: 1},
		{name: "at minimum", input: 1, expected: 1},
		{name: "in range", input: 15, expected: 15},
		{name: "at maximum", input: 60, expected: 60},
		{name: "above maximum", input: 120, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScanInterval(tt.input); got != tt.expected {
				t.Errorf("ClampScanInterval(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClampDistanceThreshold(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "below minimum", input: 0.2, expected: 1},
		{name: "at minimum", input: 1, expected: 1},
		{name: "in range", input: 30, expected: 30},
		{name: "at maximum", input: 100, expected: 100},
		{name: "above maximum", input: 500, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDistanceThreshold(tt.input); got != tt.expected {
				t.Errorf("ClampDistanceThreshold(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSettingsYAMLRoundTrip(t *testing.T) {
	s := NewSettings()
	s.Monitor.Interface = "wlan0"
	s.Monitor.ScanInterval = 10
	s.Monitor.DistanceThreshold = 25

	data, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if loaded.Version != 1 {
		t.Errorf("loaded.Version = %v, want 1", loaded.Version)
	}
	if loaded.Monitor.Interface != "wlan0" {
		t.Errorf("loaded.Monitor.Interface = %v, want wlan0", loaded.Monitor.Interface)
	}
	if loaded.Monitor.ScanInterval != 10 {
		t.Errorf("loaded.Monitor.ScanInterval = %v, want 10", loaded.Monitor.ScanInterval)
	}
	if loaded.Monitor.DistanceThreshold != 25 {
		t.Errorf("loaded.Monitor.DistanceThreshold = %v, want 25", loaded.Monitor.DistanceThreshold)
	}
}

func TestSaveAndReloadSettings(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is Linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := ReloadSettings()
	if err != nil {
		t.Fatalf("ReloadSettings() error = %v", err)
	}
	if s.Monitor.ScanInterval != DefaultScanInterval {
		t.Fatalf("fresh settings ScanInterval = %v, want %v", s.Monitor.ScanInterval, DefaultScanInterval)
	}

	s.Monitor.Interface = "wlan0"
	s.Monitor.ScanInterval = 7
	s.Monitor.DistanceThreshold = 12.5
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := ReloadSettings()
	if err != nil {
		t.Fatalf("ReloadSettings() after Save error = %v", err)
	}
	if loaded.Monitor.Interface != "wlan0" {
		t.Errorf("loaded Interface = %v, want wlan0", loaded.Monitor.Interface)
	}
	if loaded.Monitor.ScanInterval != 7 {
		t.Errorf("loaded ScanInterval = %v, want 7", loaded.Monitor.ScanInterval)
	}
	if loaded.Monitor.DistanceThreshold != 12.5 {
		t.Errorf("loaded DistanceThreshold = %v, want 12.5", loaded.Monitor.DistanceThreshold)
	}
}

func TestLoadClampsHandEditedFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is Linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	raw := []byte("version: 1\nmonitor:\n  scan_interval: 500\n  distance_threshold: 0.1\n")
	if err := os.WriteFile(configPath, raw, 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := ReloadSettings()
	if err != nil {
		t.Fatalf("ReloadSettings() error = %v", err)
	}
	if loaded.Monitor.ScanInterval != MaxScanInterval {
		t.Errorf("ScanInterval = %v, want clamped %v", loaded.Monitor.ScanInterval, MaxScanInterval)
	}
	if loaded.Monitor.DistanceThreshold != MinDistanceThreshold {
		t.Errorf("DistanceThreshold = %v, want clamped %v", loaded.Monitor.DistanceThreshold, MinDistanceThreshold)
	}
	if loaded.Server == nil || loaded.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("Server defaults not filled in, got %+v", loaded.Server)
	}
}
