// Wifimon is a Wi-Fi device distance monitor for the local network.
//
// It combines radio signal readings with ARP-level address resolution to
// maintain a live table of nearby devices and an estimated distance to
// each, exposed over an HTTP and WebSocket API.
//
// Usage:
//
//	wifimon [command] [flags]
//
// See 'wifimon --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/wifimon/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wifimon",
	Short: "Wi-Fi Device Distance Monitor",
	Long: `A monitor for devices on the local Wi-Fi network.

Wifimon periodically scans the radio environment and sweeps the local
subnet, merges both views into a single device table, and estimates the
distance to each device from its signal strength. The table is served
over an HTTP API with a WebSocket feed for live consumers.`,
	Version: version.Full(),
}

func init() {
	rootCmd.SetVersionTemplate("wifimon {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wifimon " + version.Full())
	},
}
