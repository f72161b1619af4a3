package identity

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/muurk/wifimon/internal/netinfo"
)

// UnknownDeviceType is the fallback label when nothing about a device
// suggests what it is.
const UnknownDeviceType = "Unknown Device"

// hostnameLookupTimeout bounds one reverse-DNS query.
const hostnameLookupTimeout = 2 * time.Second

// devicePatterns maps a device-type label to hostname/manufacturer
// keywords. Matching is case-insensitive over the combined hostname and
// manufacturer text; the longest matching label wins as the most specific.
var devicePatterns = map[string][]string{
	"iPhone":         {"iphone", "apple-iphone"},
	"iPad":           {"ipad", "apple-ipad"},
	"MacBook":        {"macbook", "mbp", "mba", "apple-macbook"},
	"iMac":           {"imac"},
	"Apple Watch":    {"apple-watch"},
	"Apple TV":       {"appletv", "apple-tv"},
	"Android Phone":  {"android", "galaxy", "pixel", "oneplus", "huawei", "xiaomi", "redmi", "oppo", "vivo"},
	"Smart TV":       {"roku", "firetv", "fire-tv", "chromecast", "smart-tv", "samsung-tv", "lg-tv", "bravia", "vizio", "television"},
	"Gaming Console": {"playstation", "ps4", "ps5", "xbox", "nintendo", "switch"},
	"Smart Speaker":  {"echo", "alexa", "homepod", "google-home", "nest-audio", "sonos", "speaker"},
	"Smart Display":  {"echo-show", "nest-hub", "smart-display"},
	"Security Camera": {
		"camera", "nest-cam", "arlo", "wyze", "doorbell", "surveillance",
	},
	"Laptop":         {"laptop", "notebook", "thinkpad", "chromebook", "surface"},
	"Desktop":        {"desktop", "workstation", "-pc"},
	"Network Device": {"router", "access-point", "gateway", "modem", "unifi", "tp-link", "openwrt"},
	"Smart Home Hub": {"hub", "smartthings", "home-assistant", "homekit", "zigbee", "z-wave"},
	"Printer":        {"printer", "officejet", "laserjet", "epson", "canon", "brother"},
	"IoT Module":     {"esp32", "esp8266", "espressif", "tasmota", "shelly"},
	"Single-Board Computer": {
		"raspberry", "raspberrypi", "rpi",
	},
}

// manufacturerTypes short-circuits the type guess for manufacturers whose
// products are effectively a single category.
var manufacturerTypes = map[string]string{
	"Sonos":        "Smart Speaker",
	"Ring":         "Security Camera",
	"Nest":         "Smart Home Hub",
	"Espressif":    "IoT Module",
	"Raspberry Pi": "Single-Board Computer",
	"TP-Link":      "Network Device",
}

// Resolver turns hardware addresses and hostnames into best-effort
// manufacturer names and device-type labels. It is deterministic and fully
// offline; reverse DNS and mDNS live in separate methods so the caller
// controls when network lookups happen.
type Resolver struct{}

// NewResolver creates an identity resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns a best-effort (manufacturer, deviceType) pair for a
// hardware address, refined by the hostname when one is known. The
// manufacturer may be empty; deviceType is never empty.
func (r *Resolver) Resolve(mac, hostname string) (string, string) {
	manufacturer := LookupManufacturer(netinfo.NormalizeMAC(mac))
	return manufacturer, guessDeviceType(hostname, manufacturer)
}

// guessDeviceType derives a device-type label from hostname and
// manufacturer text.
func guessDeviceType(hostname, manufacturer string) string {
	if hostname == "" && manufacturer == "" {
		return UnknownDeviceType
	}

	if t, ok := manufacturerTypes[manufacturer]; ok && hostname == "" {
		return t
	}

	searchText := strings.ToLower(hostname + " " + manufacturer)

	// The longest matching keyword wins as the most specific evidence
	// ("echo-show" beats "echo").
	var best string
	bestKeyword := 0
	for deviceType, keywords := range devicePatterns {
		for _, keyword := range keywords {
			if strings.Contains(searchText, keyword) && len(keyword) > bestKeyword {
				best = deviceType
				bestKeyword = len(keyword)
			}
		}
	}
	if best != "" {
		return best
	}

	if t, ok := manufacturerTypes[manufacturer]; ok {
		return t
	}
	if manufacturer != "" {
		return fmt.Sprintf("%s Device", manufacturer)
	}
	return UnknownDeviceType
}

// LookupHostname performs a reverse-DNS lookup for a network address,
// bounded to two seconds. Returns an empty string on any failure; lookup
// errors never propagate to the caller.
func (r *Resolver) LookupHostname(ctx context.Context, ip string) string {
	ctx, cancel := context.WithTimeout(ctx, hostnameLookupTimeout)
	defer cancel()

	names, err := net.DefaultResolver.LookupAddr(ctx, ip)
	if err != nil || len(names) == 0 {
		return ""
	}
	return strings.TrimSuffix(names[0], ".")
}
