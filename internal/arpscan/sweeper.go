package arpscan

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/muurk/wifimon/internal/netinfo"
)

// DefaultSweepTimeout bounds one ARP sweep. Replies on a home LAN arrive
// well inside a second; two seconds covers sleepy Wi-Fi clients.
const DefaultSweepTimeout = 2 * time.Second

// maxProbeHosts caps the number of addresses probed in one sweep so a wide
// netmask cannot turn the sweep into a flood.
const maxProbeHosts = 1024

// snapshotLen is the pcap capture length; ARP frames are tiny.
const snapshotLen = 128

// Neighbor is one address-resolution result: a hardware address and the
// network address it answered for.
type Neighbor struct {
	MAC string
	IP  string
}

// Sweeper broadcasts ARP requests across the interface's IPv4 subnet and
// collects the replies. One Sweep call never blocks past Timeout.
type Sweeper struct {
	// Interface is the network interface to sweep.
	Interface string

	// Timeout is the maximum time one sweep may take.
	Timeout time.Duration
}

// NewSweeper creates an ARP sweeper for the given interface with the
// default timeout.
func NewSweeper(iface string) *Sweeper {
	return &Sweeper{
		Interface: iface,
		Timeout:   DefaultSweepTimeout,
	}
}

// Sweep probes every host address in the interface's subnet and returns
// the neighbours that replied, with MACs in canonical form. Requires
// packet-capture privileges; without them the pcap open fails and the
// caller treats the sweep as empty for the cycle.
func (s *Sweeper) Sweep(ctx context.Context) ([]Neighbor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	srcIP, ipnet, err := netinfo.InterfaceCIDR(s.Interface)
	if err != nil {
		return nil, fmt.Errorf("cannot determine subnet for %s: %w", s.Interface, err)
	}
	srcMAC, err := netinfo.InterfaceMAC(s.Interface)
	if err != nil {
		return nil, fmt.Errorf("cannot determine MAC for %s: %w", s.Interface, err)
	}

	handle, err := pcap.OpenLive(s.Interface, snapshotLen, false, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for capture: %w", s.Interface, err)
	}
	defer handle.Close()

	if err := handle.SetBPFFilter("arp"); err != nil {
		return nil, fmt.Errorf("failed to set BPF filter: %w", err)
	}

	// Fire all requests up front; replies are collected until the deadline.
	targets := netinfo.HostAddresses(ipnet, maxProbeHosts)
	var senders sync.WaitGroup
	senders.Add(1)
	go func() {
		defer senders.Done()
		s.sendRequests(ctx, handle, srcMAC, srcIP, targets)
	}()

	neighbors, err := s.collectReplies(ctx, handle, srcIP, ipnet)

	// The sender must be done before the deferred handle close; a write
	// on a closed pcap handle touches freed memory.
	senders.Wait()
	return neighbors, err
}

// packetWriter is the injection surface of sendRequests; *pcap.Handle
// satisfies it.
type packetWriter interface {
	WritePacketData([]byte) error
}

// sendRequests writes one broadcast ARP request per target host.
func (s *Sweeper) sendRequests(ctx context.Context, w packetWriter, srcMAC net.HardwareAddr, srcIP net.IP, targets []net.IP) {
	eth := layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte(srcMAC),
		SourceProtAddress: []byte(srcIP.To4()),
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}

	for _, target := range targets {
		select {
		case <-ctx.Done():
			return
		default:
		}

		arp.DstProtAddress = []byte(target.To4())
		if err := gopacket.SerializeLayers(buf, opts, &eth, &arp); err != nil {
			continue
		}
		// Write errors here are per-packet and non-fatal; the sweep still
		// collects whatever replies arrive.
		_ = w.WritePacketData(buf.Bytes())
	}
}

// collectReplies reads ARP replies off the handle until the context
// deadline, deduplicating by MAC.
func (s *Sweeper) collectReplies(ctx context.Context, handle *pcap.Handle, srcIP net.IP, ipnet *net.IPNet) ([]Neighbor, error) {
	src := gopacket.NewPacketSource(handle, handle.LinkType())
	packets := src.Packets()

	seen := make(map[string]Neighbor)
	for {
		select {
		case <-ctx.Done():
			return neighborList(seen), nil
		case packet, ok := <-packets:
			if !ok {
				return neighborList(seen), nil
			}
			n, ok := ReplyFromPacket(packet)
			if !ok {
				continue
			}
			// Ignore our own address and anything outside the subnet.
			ip := net.ParseIP(n.IP)
			if ip == nil || ip.Equal(srcIP) || !ipnet.Contains(ip) {
				continue
			}
			seen[n.MAC] = n
		}
	}
}

// ReplyFromPacket extracts a Neighbor from an ARP reply packet. Returns
// false for anything that is not an ARP reply.
func ReplyFromPacket(packet gopacket.Packet) (Neighbor, bool) {
	layer := packet.Layer(layers.LayerTypeARP)
	if layer == nil {
		return Neighbor{}, false
	}
	arp, ok := layer.(*layers.ARP)
	if !ok || arp.Operation != layers.ARPReply {
		return Neighbor{}, false
	}

	mac := net.HardwareAddr(arp.SourceHwAddress).String()
	ip := net.IP(arp.SourceProtAddress).String()
	return Neighbor{
		MAC: netinfo.NormalizeMAC(mac),
		IP:  ip,
	}, true
}

func neighborList(seen map[string]Neighbor) []Neighbor {
	out := make([]Neighbor, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}
	return out
}
