package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wifimon/internal/arpscan"
	"github.com/muurk/wifimon/internal/config"
	"github.com/muurk/wifimon/internal/distance"
	"github.com/muurk/wifimon/internal/netinfo"
)

// evictionWindow is the fixed staleness cutoff: a device unseen by either
// source for longer than this is removed on the next cycle.
const evictionWindow = 300 * time.Second

// hostnameBudget bounds all reverse-DNS lookups of one cycle together.
const hostnameBudget = 3 * time.Second

// hostnameWorkers caps concurrent reverse-DNS lookups within that budget.
const hostnameWorkers = 16

// RadioSource yields the current radio neighbourhood as MAC -> RSSI (dBm).
type RadioSource interface {
	Scan(ctx context.Context) (map[string]float64, error)
}

// AddressSource yields the current ARP neighbourhood.
type AddressSource interface {
	Sweep(ctx context.Context) ([]arpscan.Neighbor, error)
}

// IdentityResolver maps addresses to descriptive metadata. Implementations
// must degrade to empty values on failure, never error into the tracker.
type IdentityResolver interface {
	Resolve(mac, hostname string) (manufacturer, deviceType string)
	LookupHostname(ctx context.Context, ip string) string
}

// Config assembles a Tracker. Radio, Addresses and Identity are required;
// the rest have defaults.
type Config struct {
	Radio     RadioSource
	Addresses AddressSource
	Identity  IdentityResolver

	// Estimator defaults to the standard indoor calibration.
	Estimator *distance.Estimator

	// BrowseHostnames, when set, is called once per cycle to enrich
	// hostnames from mDNS (IP -> hostname). Optional.
	BrowseHostnames func(ctx context.Context) map[string]string

	// ScanInterval and DistanceThreshold seed the runtime settings; both
	// are clamped.
	ScanInterval      int
	DistanceThreshold float64

	Logger *zap.Logger
}

// Tracker owns the authoritative device table. It is the only component
// that mutates the table; everything else sees point-in-time copies via
// Snapshot. Safe for concurrent use.
type Tracker struct {
	radio     RadioSource
	addresses AddressSource
	identity  IdentityResolver
	estimator *distance.Estimator
	browse    func(ctx context.Context) map[string]string
	log       *zap.Logger

	// now is swappable for tests.
	now func() time.Time

	mu                sync.Mutex
	devices           map[string]*Device
	scanInterval      int
	distanceThreshold float64

	loop loopState
}

// New creates a Tracker. The device table starts empty; nothing is scanned
// until Scan or Start is called.
func New(cfg Config) *Tracker {
	est := cfg.Estimator
	if est == nil {
		est = distance.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		radio:             cfg.Radio,
		addresses:         cfg.Addresses,
		identity:          cfg.Identity,
		estimator:         est,
		browse:            cfg.BrowseHostnames,
		log:               log,
		now:               time.Now,
		devices:           make(map[string]*Device),
		scanInterval:      config.ClampScanInterval(cfg.ScanInterval),
		distanceThreshold: config.ClampDistanceThreshold(cfg.DistanceThreshold),
	}
}

// Scan executes one full scan-and-merge cycle: radio scan, radio merge,
// ARP sweep, ARP merge, distance recomputation, staleness eviction.
//
// Scan never fails: each source failure is logged and treated as zero
// results for the cycle. Network I/O runs outside the table lock; only the
// merge and eviction bookkeeping is serialized against readers.
func (t *Tracker) Scan(ctx context.Context) {
	// Radio discovery first so an ARP-only sighting can never clobber a
	// richer radio-derived record.
	readings, err := t.radio.Scan(ctx)
	if err != nil {
		t.log.Warn("radio scan failed, continuing with empty results", zap.Error(err))
		readings = nil
	}

	now := t.now()
	t.mu.Lock()
	for mac, rssi := range readings {
		t.observeRadio(netinfo.NormalizeMAC(mac), rssi, now)
	}
	t.mu.Unlock()

	neighbors, err := t.addresses.Sweep(ctx)
	if err != nil {
		t.log.Warn("address resolution sweep failed, continuing with empty results", zap.Error(err))
		neighbors = nil
	}

	hostnames := t.resolveHostnames(ctx, neighbors)

	now = t.now()
	t.mu.Lock()
	for _, n := range neighbors {
		mac := netinfo.NormalizeMAC(n.MAC)
		t.observeNeighbor(mac, n.IP, hostnames[mac], now)
	}
	t.recomputeDistances()
	evicted := t.evictStale(now)
	deviceCount := len(t.devices)
	t.mu.Unlock()

	t.log.Info("scan cycle complete",
		zap.Int("devices", deviceCount),
		zap.Int("radio_seen", len(readings)),
		zap.Int("arp_seen", len(neighbors)),
		zap.Int("evicted", evicted),
	)
}

// resolveHostnames runs reverse DNS for each neighbour concurrently plus
// an optional mDNS browse, all under one shared time budget. Returns
// MAC -> hostname for the addresses that resolved.
func (t *Tracker) resolveHostnames(ctx context.Context, neighbors []arpscan.Neighbor) map[string]string {
	if len(neighbors) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, hostnameBudget)
	defer cancel()

	byIP := make(map[string]string, len(neighbors))
	var mu sync.Mutex
	var wg sync.WaitGroup

	// A small pool keeps a full /24 sweep from bursting into hundreds of
	// concurrent resolver queries.
	workers := hostnameWorkers
	if len(neighbors) < workers {
		workers = len(neighbors)
	}
	ips := make(chan string)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ip := range ips {
				if name := t.identity.LookupHostname(ctx, ip); name != "" {
					mu.Lock()
					byIP[ip] = name
					mu.Unlock()
				}
			}
		}()
	}

	if t.browse != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ip, name := range t.browse(ctx) {
				mu.Lock()
				// mDNS names are fresher than reverse DNS when both exist.
				byIP[ip] = name
				mu.Unlock()
			}
		}()
	}

	for _, n := range neighbors {
		ips <- n.IP
	}
	close(ips)
	wg.Wait()

	byMAC := make(map[string]string, len(byIP))
	for _, n := range neighbors {
		if name, ok := byIP[n.IP]; ok {
			byMAC[netinfo.NormalizeMAC(n.MAC)] = name
		}
	}
	return byMAC
}

// observeRadio merges one radio sighting. Caller holds the lock.
func (t *Tracker) observeRadio(mac string, rssi float64, now time.Time) {
	if d, ok := t.devices[mac]; ok {
		d.appendSignal(rssi)
		d.LastSeen = now
		if d.Manufacturer == "" {
			manufacturer, deviceType := t.identity.Resolve(mac, d.Hostname)
			if manufacturer != "" {
				d.Manufacturer = manufacturer
				d.DeviceType = deviceType
			}
		}
		return
	}

	// First sighting: seed identity from the address alone, hostname is
	// unknown until address resolution finds one.
	manufacturer, deviceType := t.identity.Resolve(mac, "")
	t.devices[mac] = &Device{
		MAC:           mac,
		RSSI:          rssi,
		SignalHistory: []float64{rssi},
		LastSeen:      now,
		Manufacturer:  manufacturer,
		DeviceType:    deviceType,
	}
}

// observeNeighbor merges one address-resolution sighting. Caller holds the
// lock.
func (t *Tracker) observeNeighbor(mac, ip, hostname string, now time.Time) {
	if d, ok := t.devices[mac]; ok {
		d.IP = ip
		d.LastSeen = now
		if hostname != "" && hostname != d.Hostname {
			d.Hostname = hostname
			if d.DisplayName == "" {
				d.DisplayName = hostname
			}
			// Hostname is new information, so the type guess improves.
			manufacturer, deviceType := t.identity.Resolve(mac, hostname)
			if d.Manufacturer == "" {
				d.Manufacturer = manufacturer
			}
			d.DeviceType = deviceType
		}
		return
	}

	// Seen only via address resolution: enters the table with a weak
	// placeholder signal and a correspondingly low-confidence distance.
	manufacturer, deviceType := t.identity.Resolve(mac, hostname)
	t.devices[mac] = &Device{
		MAC:           mac,
		IP:            ip,
		RSSI:          placeholderRSSI,
		SignalHistory: []float64{placeholderRSSI},
		LastSeen:      now,
		DisplayName:   hostname,
		Hostname:      hostname,
		Manufacturer:  manufacturer,
		DeviceType:    deviceType,
	}
}

// recomputeDistances refreshes every record's estimate from its smoothed
// signal. Caller holds the lock.
func (t *Tracker) recomputeDistances() {
	for _, d := range t.devices {
		est, err := t.estimator.Estimate(d.signalAverage())
		if err != nil {
			t.log.Warn("distance estimation failed",
				zap.String("mac", d.MAC),
				zap.Error(err),
			)
			d.EstimatedDistance = 0.0
			continue
		}
		d.EstimatedDistance = est
	}
}

// evictStale drops every record unseen for longer than the eviction
// window. Caller holds the lock.
func (t *Tracker) evictStale(now time.Time) int {
	evicted := 0
	for mac, d := range t.devices {
		if now.Sub(d.LastSeen) > evictionWindow {
			delete(t.devices, mac)
			evicted++
		}
	}
	return evicted
}

// Snapshot returns a point-in-time copy of every device whose estimated
// distance is within threshold metres, keyed by display name (or a
// synthesized "Device (<MAC>)" label). The result shares no memory with
// the live table and is safe to use while scanning continues.
func (t *Tracker) Snapshot(threshold float64) map[string]DeviceInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]DeviceInfo)
	for _, d := range t.devices {
		if d.EstimatedDistance > threshold {
			continue
		}
		out[d.label()] = d.info()
	}
	return out
}

// UpdateSettings clamps and stores the scan interval ([1, 60] seconds) and
// distance threshold ([1, 100] metres). Both take effect atomically for
// the next cycle. The stored values are returned.
func (t *Tracker) UpdateSettings(scanInterval int, distanceThreshold float64) (int, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.scanInterval = config.ClampScanInterval(scanInterval)
	t.distanceThreshold = config.ClampDistanceThreshold(distanceThreshold)

	t.log.Info("settings updated",
		zap.Int("scan_interval", t.scanInterval),
		zap.Float64("distance_threshold", t.distanceThreshold),
	)
	return t.scanInterval, t.distanceThreshold
}

// Settings returns the current scan interval and distance threshold.
func (t *Tracker) Settings() (int, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scanInterval, t.distanceThreshold
}

// DeviceCount returns the current table size.
func (t *Tracker) DeviceCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.devices)
}
