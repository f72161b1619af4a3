package netinfo

import (
	"fmt"
	"net"
	"strings"
)

// DetectInterface finds the most plausible Wi-Fi interface for scanning:
// the first interface that is up, not a loopback, multicast-capable and
// carries a private IPv4 address. Interfaces whose names suggest virtual
// adapters (docker, bridges, tunnels) are skipped.
func DetectInterface() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagMulticast == 0 {
			continue
		}
		if isVirtualName(iface.Name) {
			continue
		}

		ip, _, err := interfaceIPv4(iface)
		if err != nil {
			continue
		}
		if ip.IsPrivate() {
			return iface.Name, nil
		}
	}

	return "", fmt.Errorf("no suitable network interface found")
}

// isVirtualName filters out interface names that belong to container
// bridges, tunnels and other virtual adapters we never want to scan.
func isVirtualName(name string) bool {
	prefixes := []string{"docker", "br-", "veth", "virbr", "tun", "tap", "utun", "awdl", "llw", "lo"}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// InterfaceCIDR returns the IPv4 address and subnet of the named interface.
func InterfaceCIDR(name string) (net.IP, *net.IPNet, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, nil, fmt.Errorf("interface %s not found: %w", name, err)
	}
	ip, ipnet, err := interfaceIPv4(*iface)
	if err != nil {
		return nil, nil, fmt.Errorf("interface %s has no IPv4 address: %w", name, err)
	}
	return ip, ipnet, nil
}

// InterfaceMAC returns the hardware address of the named interface.
func InterfaceMAC(name string) (net.HardwareAddr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("interface %s not found: %w", name, err)
	}
	if len(iface.HardwareAddr) == 0 {
		return nil, fmt.Errorf("interface %s has no hardware address", name)
	}
	return iface.HardwareAddr, nil
}

// interfaceIPv4 extracts the first IPv4 address and network from an
// interface's address list.
func interfaceIPv4(iface net.Interface) (net.IP, *net.IPNet, error) {
	addrs, err := iface.Addrs()
	if err != nil {
		return nil, nil, err
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4, ipnet, nil
		}
	}
	return nil, nil, fmt.Errorf("no IPv4 address")
}

// HostAddresses enumerates the usable host addresses in a subnet, capped at
// cap entries so a misconfigured wide mask cannot generate millions of ARP
// probes. The network and broadcast addresses are excluded.
func HostAddresses(ipnet *net.IPNet, cap int) []net.IP {
	ip4 := ipnet.IP.To4()
	if ip4 == nil {
		return nil
	}

	ones, bits := ipnet.Mask.Size()
	if bits != 32 {
		return nil
	}
	total := 1 << (bits - ones)

	var hosts []net.IP
	base := ipToUint32(ip4) & maskToUint32(ipnet.Mask)
	for i := 1; i < total-1; i++ {
		if len(hosts) >= cap {
			break
		}
		hosts = append(hosts, uint32ToIP(base+uint32(i)))
	}
	return hosts
}

func ipToUint32(ip net.IP) uint32 {
	ip4 := ip.To4()
	return uint32(ip4[0])<<24 | uint32(ip4[1])<<16 | uint32(ip4[2])<<8 | uint32(ip4[3])
}

func maskToUint32(mask net.IPMask) uint32 {
	return uint32(mask[0])<<24 | uint32(mask[1])<<16 | uint32(mask[2])<<8 | uint32(mask[3])
}

func uint32ToIP(v uint32) net.IP {
	return net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v)).To4()
}

// NormalizeMAC converts a hardware address string to the canonical
// uppercase colon-separated form used as the tracker's merge key.
// Dash-separated and lowercase inputs are accepted.
func NormalizeMAC(mac string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(mac), "-", ":"))
}
