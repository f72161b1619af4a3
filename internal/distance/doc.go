// Package distance estimates physical distance from Wi-Fi signal strength.
//
// The estimator implements the log-distance path-loss model:
//
//	distance = 10 ^ ((referencePower - rssi) / (10 * pathLossExponent))
//
// where referencePower is the expected RSSI one metre from the receiver and
// pathLossExponent captures how quickly signal decays in the environment
// (3.0 is typical indoors).
//
// # Calibration
//
// Calibration constants are fixed when an Estimator is constructed. The
// defaults (-50 dBm, 3.0) match a typical home environment; NewEstimator
// exists mainly so tests can exercise other calibrations.
//
// # Bounds
//
// Estimates are clamped to [0.5, 100] metres. A signal at or above the
// reference power always reads as 0.5 m - the model cannot resolve
// anything closer than the calibration point. Results are rounded to two
// decimal places.
//
// # Accuracy
//
// RSSI-based ranging is coarse. Multipath reflection, body shadowing and
// transmit-power differences between devices easily introduce multi-metre
// error, which is why the tracker feeds this estimator an average over the
// last ten readings instead of single samples.
package distance
