// Package watch implements the live terminal dashboard for a running
// wifimon server.
//
// Built using the Bubble Tea framework, it follows the Elm architecture
// with immutable state updates and a Model-Update-View pattern, the same
// shape as any other full-screen Bubble Tea program.
//
// # Data flow
//
// The dashboard is a pure consumer: it dials the server's /api/ws
// WebSocket feed and re-renders each pushed snapshot. No scanning or
// tracking state lives in this package.
//
//  1. Init issues the connection command and starts the spinner.
//  2. On connect, a blocking read command waits for the next snapshot.
//  3. Each devicesMsg replaces the table and re-arms the read.
//  4. A read error ends the feed; the error is shown until the user quits.
//
// # Rendering
//
// Devices are sorted nearest first and rendered as a fixed-width table.
// The distance column is colour-banded by proximity: green under five
// metres, orange under twenty, pink beyond.
//
// # Usage Example
//
//	if err := watch.Run("127.0.0.1:8450"); err != nil {
//	    log.Fatal(err)
//	}
package watch
