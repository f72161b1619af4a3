// Package tracker is the device-tracking engine: it owns the authoritative
// table of devices seen on the local network and keeps it current from a
// periodic scan cycle.
//
// # Scan cycle
//
// Each cycle runs six steps in a fixed order:
//
//  1. Radio scan - collect MAC -> RSSI for every visible peer.
//  2. Radio merge - create or update records under the table lock.
//  3. ARP sweep - collect MAC -> IP for every host that answers, with
//     concurrent reverse-DNS/mDNS hostname resolution.
//  4. ARP merge - fill network addresses and hostnames; devices seen only
//     here enter the table with a -100 dBm placeholder signal.
//  5. Distance recomputation - every record's estimate is refreshed from
//     the mean of its last ten readings.
//  6. Eviction - records unseen for over 300 seconds are removed.
//
// Radio runs before ARP so a resolution-only sighting never clobbers a
// richer radio-derived record, and identity guesses only ever improve
// within a cycle.
//
// # Error absorption
//
// Nothing escapes Scan. A source timeout or failure is logged and treated
// as zero results for that cycle; a distance-estimation failure zeroes
// that record's distance for the cycle. Callers of Scan and Snapshot never
// see an error.
//
// # Concurrency
//
// One background goroutine (Start/Stop) runs cycles serially. Any number
// of goroutines may call Snapshot concurrently; a single mutex covers all
// table access, and it is held only for merge and eviction bookkeeping,
// never during network I/O. A snapshot therefore reflects the state
// before or after a cycle's merge, never a partial merge.
//
// Stop is cooperative: it cancels the loop's context and waits up to three
// seconds, returning either way. A panic in the loop is contained, flips
// the Failed flag, and leaves the table queryable with last-known values.
package tracker
