package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

// mDNS service types worth browsing for hostname enrichment. Most consumer
// devices advertise at least one of these.
var browseServices = []string{
	"_workstation._tcp",
	"_http._tcp",
	"_airplay._tcp",
	"_googlecast._tcp",
}

// ServiceDomain is the mDNS domain (typically "local.")
const ServiceDomain = "local."

// browseFunc matches zeroconf.Resolver.Browse. Injectable for tests.
type browseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// BrowseHostnames browses common mDNS service types on the local network
// and returns a mapping from IPv4 address to the advertised hostname.
//
// This is strictly opportunistic: devices that answer give the tracker a
// friendlier name than reverse DNS usually provides. Any resolver or
// browse failure degrades to an empty (or partial) map, never an error the
// scan cycle has to care about.
func BrowseHostnames(ctx context.Context, timeout time.Duration) map[string]string {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return map[string]string{}
	}
	return browseHostnames(ctx, timeout, resolver.Browse)
}

// browseHostnames runs one browse per service type and merges the results.
//
// Each Browse call owns a dedicated entries channel: zeroconf closes the
// channel itself when the browse context ends, so a channel must never be
// shared between browses or closed here once Browse has accepted it.
func browseHostnames(ctx context.Context, timeout time.Duration, browse browseFunc) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	hostnames := make(map[string]string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, service := range browseServices {
		entries := make(chan *zeroconf.ServiceEntry)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range entries {
				ip, hostname := parseServiceEntry(entry)
				if ip == "" || hostname == "" {
					continue
				}
				mu.Lock()
				if _, exists := hostnames[ip]; !exists {
					hostnames[ip] = hostname
				}
				mu.Unlock()
			}
		}()

		if err := browse(ctx, service, ServiceDomain, entries); err != nil {
			// Browse never took ownership of the channel, so it is closed
			// here to release the collector.
			close(entries)
		}
	}

	wg.Wait()
	return hostnames
}

// parseServiceEntry extracts the IPv4 address and a cleaned hostname from
// a zeroconf service entry. Returns empty strings when the entry carries
// neither.
func parseServiceEntry(entry *zeroconf.ServiceEntry) (string, string) {
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" {
		return "", ""
	}

	hostname := strings.TrimSuffix(entry.HostName, ".")
	if hostname == "" {
		hostname = entry.Instance
	}
	return ip, hostname
}
