// Package logging provides structured logging for the wifimon project.
//
// Logging is built on go.uber.org/zap with a console encoder. The verbosity
// level is taken from an explicit Initialize argument or, when that is
// empty, from the WIFIMON_LOG_LEVEL environment variable. When neither is
// set the logger is a no-op, so one-shot CLI commands stay silent by
// default while the long-running server can log at any level.
//
// # Levels
//
//   - debug: per-device scan details, parser output, eviction decisions
//   - info: scan cycle summaries, HTTP requests, lifecycle events
//   - warn: recoverable source failures (scan timeouts, ARP errors)
//   - error: unexpected failures that were absorbed rather than propagated
//
// # Colour
//
// Level names are colourised only when stdout is an interactive terminal.
// Piped or redirected output gets plain capitalised level names so log
// files stay free of escape sequences.
package logging
