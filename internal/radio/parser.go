package radio

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/muurk/wifimon/internal/netinfo"
)

// macPattern matches a hardware address in colon or dash form anywhere in a
// scan output line.
var macPattern = regexp.MustCompile(`([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}`)

// bssPattern matches the header line of one BSS block in `iw` scan output,
// e.g. "BSS aa:bb:cc:dd:ee:ff(on wlan0)".
var bssPattern = regexp.MustCompile(`^BSS\s+(([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2})`)

// signalPattern matches the signal line of an `iw` BSS block,
// e.g. "signal: -45.00 dBm".
var signalPattern = regexp.MustCompile(`signal:\s*(-?\d+(?:\.\d+)?)\s*dBm`)

// ParseAirportScan extracts MAC -> RSSI pairs from the output of the macOS
// `airport -s` scan. Each data line carries the BSSID and a negative
// whole-number RSSI column; lines without both are skipped.
func ParseAirportScan(output string) map[string]float64 {
	readings := make(map[string]float64)

	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return readings
	}

	// First line is the column header.
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		mac := macPattern.FindString(line)
		if mac == "" {
			continue
		}

		// RSSI is the first standalone negative integer field.
		var rssi float64
		found := false
		for _, part := range strings.Fields(line) {
			if !strings.HasPrefix(part, "-") {
				continue
			}
			v, err := strconv.ParseFloat(part, 64)
			if err == nil && v < 0 {
				rssi = v
				found = true
				break
			}
		}
		if !found {
			continue
		}

		readings[netinfo.NormalizeMAC(mac)] = rssi
	}

	return readings
}

// ParseIWScan extracts MAC -> RSSI pairs from the output of the Linux
// `iw dev <iface> scan` command. Output is a sequence of BSS blocks; the
// block header carries the BSSID and a later "signal:" line carries the
// reading in dBm.
func ParseIWScan(output string) map[string]float64 {
	readings := make(map[string]float64)

	var currentMAC string
	for _, line := range strings.Split(output, "\n") {
		if m := bssPattern.FindStringSubmatch(line); m != nil {
			currentMAC = netinfo.NormalizeMAC(m[1])
			continue
		}
		if currentMAC == "" {
			continue
		}
		if m := signalPattern.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				readings[currentMAC] = v
			}
			currentMAC = ""
		}
	}

	return readings
}
