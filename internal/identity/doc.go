// Package identity resolves hardware and network addresses into
// human-meaningful device descriptions.
//
// Three mechanisms, in increasing cost:
//
//  1. OUI lookup - a static table mapping MAC address prefixes to
//     manufacturer names. Pure string matching, always available.
//  2. Device-type guessing - keyword patterns over the hostname and
//     manufacturer text ("iphone", "sonos", "thinkpad", ...) producing a
//     coarse label like "Smart Speaker" or "Laptop".
//  3. Hostname discovery - reverse DNS per address (LookupHostname) and an
//     opportunistic mDNS browse of common service types (BrowseHostnames)
//     that maps IPs to advertised hostnames.
//
// # Contract
//
// Resolve is deterministic and side-effect free: same inputs, same
// outputs, no network. The network lookups are separate methods with their
// own short timeouts, and every failure degrades to an empty value - this
// package never returns an error into the scan cycle.
//
// # Fallback chain for device type
//
// hostname/manufacturer keyword match, else a manufacturer-implied type
// (e.g. Sonos -> Smart Speaker), else "<Manufacturer> Device", else
// "Unknown Device". The label is never empty.
package identity
