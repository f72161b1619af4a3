// Package arpscan is the address-resolution source for the device tracker.
//
// A sweep broadcasts one ARP request per host address in the scan
// interface's IPv4 subnet and collects the replies, producing
// {hardware address, network address} pairs. Devices whose radios are
// invisible to a Wi-Fi scan (anything that is a client rather than an
// access point) still answer ARP, which is what makes this the broader of
// the two sources.
//
// # Contract
//
// Sweep is bounded by a context timeout (2 s by default) and never blocks
// past it. Whatever replies have arrived by the deadline are returned; an
// open or filter error is returned to the caller, which logs it and treats
// the sweep as empty for that cycle.
//
// # Mechanism
//
// Packet I/O uses gopacket over libpcap: open the interface with a short
// read timeout, install an "arp" BPF filter, serialize Ethernet+ARP
// request frames to the broadcast address, and parse replies off the
// packet source. Probing is capped at 1024 hosts per sweep so a wide
// netmask cannot turn into a packet flood.
//
// # Privileges
//
// Opening a live capture handle requires root or CAP_NET_RAW. Without it
// the sweep fails cleanly and the tracker runs on radio data alone.
package arpscan
