package distance

import (
	"fmt"
	"math"
)

// Default calibration constants for the log-distance path-loss model.
// ReferencePower is the expected RSSI at roughly one metre from the
// receiver; PathLossExponent 3.0 suits a typical indoor environment with
// walls and furniture.
const (
	DefaultReferencePower   = -50.0
	DefaultPathLossExponent = 3.0

	// MinDistance and MaxDistance bound every estimate. Anything stronger
	// than the reference power reads as MinDistance ("closer than the
	// calibration point"); anything weaker clamps at MaxDistance.
	MinDistance = 0.5
	MaxDistance = 100.0
)

// Estimator converts smoothed RSSI values to distance estimates using the
// log-distance path-loss model. Calibration is fixed at construction time.
type Estimator struct {
	referencePower   float64
	pathLossExponent float64
}

// NewEstimator creates an estimator with explicit calibration constants.
// Calibration is construction-time only; there is no runtime adjustment.
func NewEstimator(referencePower, pathLossExponent float64) *Estimator {
	return &Estimator{
		referencePower:   referencePower,
		pathLossExponent: pathLossExponent,
	}
}

// Default returns an estimator with the standard indoor calibration
// (-50 dBm reference power, 3.0 path-loss exponent).
func Default() *Estimator {
	return NewEstimator(DefaultReferencePower, DefaultPathLossExponent)
}

// Estimate converts a (typically averaged) RSSI value in dBm to an
// estimated distance in metres.
//
// The result is clamped to [0.5, 100] metres and rounded to two decimal
// places. A non-finite input yields 0.0 and a non-nil error; callers are
// expected to log and absorb it rather than abort their cycle.
func (e *Estimator) Estimate(signalAvg float64) (float64, error) {
	if math.IsNaN(signalAvg) || math.IsInf(signalAvg, 0) {
		return 0.0, fmt.Errorf("non-finite signal value: %v", signalAvg)
	}

	if signalAvg >= e.referencePower {
		return MinDistance, nil
	}

	d := math.Pow(10, (e.referencePower-signalAvg)/(10*e.pathLossExponent))
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0.0, fmt.Errorf("path-loss model produced non-finite distance for signal %v", signalAvg)
	}

	d = math.Max(MinDistance, math.Min(d, MaxDistance))
	return math.Round(d*100) / 100, nil
}
