// Package server exposes the device tracker over an HTTP and WebSocket
// API.
//
// The server is a thin reader over a tracker instance it is handed at
// construction; it never owns device state itself. All endpoints are
// JSON.
//
// # Endpoints
//
//	GET  /api/devices   - snapshot of devices within the current distance
//	                      threshold, keyed by display label
//	GET  /api/settings  - current scan_interval and distance_threshold
//	POST /api/settings  - partial update of either setting; non-numeric
//	                      values are rejected with 400 and change nothing;
//	                      the response body carries the clamped stored
//	                      values
//	GET  /api/status    - scheduler liveness, table size, interface,
//	                      version
//	GET  /api/ws        - WebSocket feed pushing the devices payload every
//	                      scan interval
//
// # Lifecycle
//
// Start launches the tracker's scan loop, serves until SIGINT/SIGTERM,
// then shuts down the listener gracefully and stops the tracker. TLS is
// enabled when both a certificate and key path are configured.
//
// # Concurrency
//
// Handlers only call the tracker's thread-safe accessors, so any number
// of concurrent requests (and WebSocket push loops) coexist with the
// background scan loop.
package server
