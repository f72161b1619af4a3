package radio

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// airportPath is the private macOS scan utility. It has no stable public
// replacement; CoreWLAN is the only alternative and is not callable from a
// plain process.
const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

// DefaultScanTimeout bounds one radio scan. The platform tools normally
// finish in 2-4 seconds; anything longer is treated as a failed scan.
const DefaultScanTimeout = 5 * time.Second

// Scanner queries the wireless adapter for visible peers and their signal
// strength. It shells out to the platform scan utility and parses its
// output; the scan never blocks past Timeout.
type Scanner struct {
	// Interface is the wireless interface to scan (e.g. "wlan0", "en0").
	Interface string

	// Timeout is the maximum time one scan may take.
	Timeout time.Duration

	// runCommand is swappable for tests.
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewScanner creates a radio scanner for the given interface with the
// default timeout.
func NewScanner(iface string) *Scanner {
	return &Scanner{
		Interface:  iface,
		Timeout:    DefaultScanTimeout,
		runCommand: runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Scan queries the adapter and returns a mapping from canonical MAC
// address to RSSI in dBm. A tool failure or timeout returns an error; the
// caller treats that as an empty result for the cycle.
func (s *Scanner) Scan(ctx context.Context) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	run := s.runCommand
	if run == nil {
		run = runCommand
	}

	switch runtime.GOOS {
	case "darwin":
		out, err := run(ctx, airportPath, "-s")
		if err != nil {
			return nil, fmt.Errorf("airport scan failed: %w", err)
		}
		return ParseAirportScan(string(out)), nil

	case "linux":
		out, err := run(ctx, "iw", "dev", s.Interface, "scan")
		if err != nil {
			return nil, fmt.Errorf("iw scan failed: %w", err)
		}
		return ParseIWScan(string(out)), nil

	default:
		return nil, fmt.Errorf("radio scanning not supported on %s", runtime.GOOS)
	}
}
