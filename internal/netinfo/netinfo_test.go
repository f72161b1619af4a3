package netinfo

import (
	"net"
	"testing"
)

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already canonical", input: "AA:BB:CC:DD:EE:FF", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "lowercase", input: "aa:bb:cc:dd:ee:ff", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "dash separated", input: "aa-bb-cc-dd-ee-ff", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "surrounding whitespace", input: "  aa:bb:cc:dd:ee:ff ", expected: "AA:BB:CC:DD:EE:FF"},
		{name: "mixed case", input: "Aa:bB:cC:Dd:Ee:fF", expected: "AA:BB:CC:DD:EE:FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMAC(tt.input); got != tt.expected {
				t.Errorf("NormalizeMAC(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHostAddresses(t *testing.T) {
	_, ipnet, err := net.ParseCIDR("192.168.1.0/24")
	if err != nil {
		t.Fatalf("ParseCIDR error = %v", err)
	}

	hosts := HostAddresses(ipnet, 1024)

	// A /24 has 254 usable hosts.
	if len(hosts) != 254 {
		t.Fatalf("HostAddresses(/24) returned %d hosts, want 254", len(hosts))
	}
	if hosts[0].String() != "192.168.1.1" {
		t.Errorf("first host = %v, want 192.168.1.1", hosts[0])
	}
	if hosts[len(hosts)-1].String() != "192.168.1.254" {
		t.Errorf("last host = %v, want 192.168.1.254", hosts[len(hosts)-1])
	}
}

func TestHostAddresses_Cap(t *testing.T) {
	_, ipnet, err := net.ParseCIDR("10.0.0.0/16")
	if err != nil {
		t.Fatalf("ParseCIDR error = %v", err)
	}

	hosts := HostAddresses(ipnet, 512)
	if len(hosts) != 512 {
		t.Errorf("HostAddresses(/16, cap 512) returned %d hosts, want 512", len(hosts))
	}
}

func TestHostAddresses_SmallSubnet(t *testing.T) {
	_, ipnet, err := net.ParseCIDR("192.168.1.0/30")
	if err != nil {
		t.Fatalf("ParseCIDR error = %v", err)
	}

	// /30 has 2 usable hosts.
	hosts := HostAddresses(ipnet, 1024)
	if len(hosts) != 2 {
		t.Fatalf("HostAddresses(/30) returned %d hosts, want 2", len(hosts))
	}
	if hosts[0].String() != "192.168.1.1" || hosts[1].String() != "192.168.1.2" {
		t.Errorf("hosts = %v, want [192.168.1.1 192.168.1.2]", hosts)
	}
}

func TestIsVirtualName(t *testing.T) {
	tests := []struct {
		name    string
		virtual bool
	}{
		{name: "wlan0", virtual: false},
		{name: "en0", virtual: false},
		{name: "eth0", virtual: false},
		{name: "docker0", virtual: true},
		{name: "br-4f2a", virtual: true},
		{name: "veth1234", virtual: true},
		{name: "tun0", virtual: true},
		{name: "utun3", virtual: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isVirtualName(tt.name); got != tt.virtual {
				t.Errorf("isVirtualName(%q) = %v, want %v", tt.name, got, tt.virtual)
			}
		})
	}
}
