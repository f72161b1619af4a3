// Package radio is the wireless signal source for the device tracker.
//
// It queries the platform scan utility for all currently visible peer
// hardware addresses and their raw RSSI readings in dBm:
//
//   - macOS: the private Apple80211 "airport -s" utility
//   - Linux: "iw dev <iface> scan"
//
// # Contract
//
// Scan returns a map from canonical (uppercase, colon-separated) MAC
// address to RSSI. The call is bounded by a context timeout (5 s by
// default) and never blocks past it; a timeout or tool failure is returned
// as an error that the tracker logs and treats as "no radio results this
// cycle". It never aborts a scan cycle.
//
// # Parsing
//
// Output parsing is split from process execution so it can be tested
// against recorded scan output without a wireless adapter. ParseAirportScan
// and ParseIWScan are pure functions over the respective tool outputs.
//
// # Privileges
//
// "iw scan" requires root (or CAP_NET_ADMIN) on most distributions. When
// unprivileged the tool fails, the source reports an error, and the tracker
// carries on with ARP-only data.
package radio
