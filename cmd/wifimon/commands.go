package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/wifimon/internal/arpscan"
	"github.com/muurk/wifimon/internal/config"
	"github.com/muurk/wifimon/internal/identity"
	"github.com/muurk/wifimon/internal/logging"
	"github.com/muurk/wifimon/internal/netinfo"
	"github.com/muurk/wifimon/internal/radio"
	"github.com/muurk/wifimon/internal/server"
	"github.com/muurk/wifimon/internal/tracker"
	"github.com/muurk/wifimon/internal/watch"
)

// Serve command flags. Zero values defer to the configuration file.
var (
	listenAddr        string
	ifaceName         string
	scanInterval      int
	distanceThreshold float64
	certPath          string
	keyPath           string
	logLevel          string
	watchAddr         string
)

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Address to bind the API server to (default from config)")
	serveCmd.Flags().StringVar(&ifaceName, "interface", "", "Network interface to scan (default auto-detect)")
	serveCmd.Flags().IntVar(&scanInterval, "interval", 0, "Seconds between scan cycles, 1-60 (default from config)")
	serveCmd.Flags().Float64Var(&distanceThreshold, "threshold", 0, "Max distance in metres for reported devices, 1-100 (default from config)")
	serveCmd.Flags().StringVar(&certPath, "cert", "", "TLS certificate path (serve plain HTTP when unset)")
	serveCmd.Flags().StringVar(&keyPath, "key", "", "TLS private key path")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Logging verbosity (debug, info, warn, error)")

	scanCmd.Flags().StringVar(&ifaceName, "interface", "", "Network interface to scan (default auto-detect)")

	watchCmd.Flags().StringVar(&watchAddr, "addr", config.DefaultListenAddr, "Address of a running wifimon server")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
}

// serveCmd runs the monitor and its API server in the foreground.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the monitor and serve the device API",
	Long: `Run the scan loop and serve the device table over HTTP.

Settings are loaded from the configuration file and may be overridden
per-flag. The server runs until interrupted; settings changed through
the API are written back to the configuration file.`,
	Example: `  # Serve with defaults (auto-detected interface, config-file settings)
  wifimon serve

  # Bind to all interfaces and scan every 5 seconds
  wifimon serve --listen 0.0.0.0:8450 --interval 5

  # Serve over TLS
  wifimon serve --cert server.crt --key server.key`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Flags override the configuration file.
	iface := ifaceName
	if iface == "" {
		iface = settings.Monitor.Interface
	}
	if iface == "" {
		iface, err = netinfo.DetectInterface()
		if err != nil {
			return fmt.Errorf("no scan interface: %w (use --interface)", err)
		}
	}
	interval := settings.Monitor.ScanInterval
	if scanInterval != 0 {
		interval = scanInterval
	}
	threshold := settings.Monitor.DistanceThreshold
	if distanceThreshold != 0 {
		threshold = distanceThreshold
	}
	addr := settings.Server.ListenAddr
	if listenAddr != "" {
		addr = listenAddr
	}
	level := settings.Monitor.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	cert, key := settings.Server.CertPath, settings.Server.KeyPath
	if certPath != "" {
		cert, key = certPath, keyPath
	}

	// Logging comes up before the tracker so scan cycles are logged from
	// the first cycle.
	if err := logging.Initialize(level); err != nil {
		return err
	}
	defer logging.Sync()

	tr := buildTracker(iface, interval, threshold)

	srv, err := server.New(&server.Config{
		ListenAddr: addr,
		CertPath:   cert,
		KeyPath:    key,
		Interface:  iface,
	}, tr, settings)
	if err != nil {
		return err
	}

	fmt.Printf("Monitoring %s, serving on %s\n", iface, addr)
	return srv.Start()
}

// scanCmd runs a single scan cycle and prints the result.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one scan cycle and print the device table",
	Long: `Run a single combined radio and ARP scan and print every device
found, nearest first. Useful for checking interface selection and
permissions before running the server.`,
	Example: `  # One-shot scan on the auto-detected interface
  wifimon scan

  # Scan a specific interface
  wifimon scan --interface en0`,
	RunE: runOneShotScan,
}

func runOneShotScan(cmd *cobra.Command, args []string) error {
	// Silent unless WIFIMON_LOG_LEVEL is set.
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	iface := ifaceName
	if iface == "" {
		var err error
		iface, err = netinfo.DetectInterface()
		if err != nil {
			return fmt.Errorf("no scan interface: %w (use --interface)", err)
		}
	}

	fmt.Printf("Scanning on %s...\n\n", iface)

	tr := buildTracker(iface, config.DefaultScanInterval, config.MaxDistanceThreshold)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	tr.Scan(ctx)

	devices := tr.Snapshot(config.MaxDistanceThreshold)
	if len(devices) == 0 {
		fmt.Println("No devices found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Radio scanning needs a wireless interface (and root on Linux)")
		fmt.Println("  - ARP sweeping needs packet capture privileges")
		fmt.Println("  - Use --interface to pick the interface explicitly")
		return nil
	}

	labels := make([]string, 0, len(devices))
	for label := range devices {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return devices[labels[i]].Distance < devices[labels[j]].Distance
	})

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for _, label := range labels {
		d := devices[label]
		fmt.Printf("  %s\n", label)
		fmt.Printf("    Distance: %.2f m  (RSSI %.0f dBm)\n", d.Distance, d.RSSI)
		if d.IP != "" {
			fmt.Printf("    IP:       %s\n", d.IP)
		}
		if d.Manufacturer != "" {
			fmt.Printf("    Vendor:   %s\n", d.Manufacturer)
		}
		fmt.Printf("    Type:     %s\n\n", d.DeviceType)
	}
	return nil
}

// watchCmd attaches the live dashboard to a running server.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard for a running server",
	Long: `Connect to a running wifimon server and show its device table as
a live, distance-sorted dashboard. Requires 'wifimon serve' to be
running.`,
	Example: `  # Watch the local server
  wifimon watch

  # Watch a remote server
  wifimon watch --addr 192.168.1.10:8450`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch.Run(watchAddr)
	},
}

// buildTracker assembles the scan pipeline for an interface.
func buildTracker(iface string, interval int, threshold float64) *tracker.Tracker {
	return tracker.New(tracker.Config{
		Radio:     radio.NewScanner(iface),
		Addresses: arpscan.NewSweeper(iface),
		Identity:  identity.NewResolver(),
		BrowseHostnames: func(ctx context.Context) map[string]string {
			return identity.BrowseHostnames(ctx, 2*time.Second)
		},
		ScanInterval:      interval,
		DistanceThreshold: threshold,
		Logger:            logging.GetLogger(),
	})
}
