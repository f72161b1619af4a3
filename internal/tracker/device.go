package tracker

import (
	"fmt"
	"time"
)

// signalHistorySize bounds the per-device RSSI history used for smoothing.
const signalHistorySize = 10

// placeholderRSSI is assigned to devices seen only via address resolution.
// -100 dBm is below anything a radio scan reports, so these devices sort
// to a very large, low-confidence distance instead of being absent.
const placeholderRSSI = -100.0

// Device is one tracked device, keyed by hardware address. All fields are
// owned by the Tracker and mutated only under its lock; Snapshot hands out
// copies, never pointers into the table.
type Device struct {
	// MAC is the canonical hardware address. Immutable once the record
	// exists; it is the sole merge key across both scan sources.
	MAC string

	// IP is the last known network address; empty until ARP resolves it.
	IP string

	// RSSI is the most recent raw signal reading in dBm.
	RSSI float64

	// SignalHistory holds the last readings, oldest first, capped at
	// signalHistorySize. Used only for distance smoothing.
	SignalHistory []float64

	// LastSeen is the time of the most recent observation from either
	// source.
	LastSeen time.Time

	// Descriptive fields, filled lazily and never downgraded. Hostname may
	// be replaced when a fresher authoritative value arrives, which also
	// re-derives DeviceType.
	DisplayName  string
	Manufacturer string
	DeviceType   string
	Hostname     string

	// EstimatedDistance in metres, recomputed every cycle from the mean of
	// SignalHistory.
	EstimatedDistance float64
}

// appendSignal records a new reading, evicting the oldest when full.
func (d *Device) appendSignal(rssi float64) {
	d.RSSI = rssi
	d.SignalHistory = append(d.SignalHistory, rssi)
	if len(d.SignalHistory) > signalHistorySize {
		d.SignalHistory = d.SignalHistory[1:]
	}
}

// signalAverage returns the mean of the signal history.
func (d *Device) signalAverage() float64 {
	if len(d.SignalHistory) == 0 {
		return d.RSSI
	}
	var sum float64
	for _, s := range d.SignalHistory {
		sum += s
	}
	return sum / float64(len(d.SignalHistory))
}

// label is the snapshot key: the display name when one is known, else a
// synthesized identifier.
func (d *Device) label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return fmt.Sprintf("Device (%s)", d.MAC)
}

// DeviceInfo is the immutable per-device view returned by Snapshot and
// serialized by the API layer.
type DeviceInfo struct {
	Distance     float64 `json:"distance"`
	RSSI         float64 `json:"rssi"`
	LastSeen     string  `json:"last_seen"`
	IP           string  `json:"ip_address"`
	MAC          string  `json:"mac_address"`
	Manufacturer string  `json:"manufacturer"`
	DeviceType   string  `json:"device_type"`
	Hostname     string  `json:"hostname"`
}

// info builds the snapshot view of a device.
func (d *Device) info() DeviceInfo {
	return DeviceInfo{
		Distance:     d.EstimatedDistance,
		RSSI:         d.RSSI,
		LastSeen:     d.LastSeen.Format(time.RFC3339),
		IP:           d.IP,
		MAC:          d.MAC,
		Manufacturer: d.Manufacturer,
		DeviceType:   d.DeviceType,
		Hostname:     d.Hostname,
	}
}
