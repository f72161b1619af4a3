// Package netinfo provides local network interface introspection for the
// scanning sources.
//
// It answers three questions the scanners need before touching the
// network: which interface to scan (DetectInterface), what IPv4 subnet
// that interface sits on (InterfaceCIDR), and which host addresses to
// probe within it (HostAddresses).
//
// Interface detection prefers the first up, non-loopback,
// multicast-capable interface holding a private IPv4 address, skipping
// names that belong to container bridges and tunnels. This matches what an
// operator on a home or office LAN almost always wants; the --interface
// flag exists for the rest.
//
// The package also owns MAC normalization: every hardware address that
// crosses a package boundary in this project is uppercase and
// colon-separated (NormalizeMAC), so map lookups never miss on formatting.
package netinfo
