package geometry

import "math"

// Tolerances used by every "is this effectively zero" decision in the module.
// They are variables rather than constants so callers can match the tolerances
// of whatever system produced their coordinates.
var (
	// Metric distance below which two coordinates are considered equal.
	SmallMetricDistance = 1.0e-6
	// Square of SmallMetricDistance, for comparisons against squared lengths.
	SmallMetricDistanceSquared = 1.0e-12
	// Angle (radians) below which two directions are considered parallel.
	SmallAngleRadians = 1.0e-12
	// Relative size of a denominator, compared to its numerator scale, below
	// which a division is refused.
	SmallFraction = 1.0e-10
)

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= SmallMetricDistance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// ConditionalDivide returns numerator/denominator, or false when the
// denominator is too small relative to scale for the quotient to mean anything.
func ConditionalDivide(numerator, denominator, scale float64) (float64, bool) {
	if math.Abs(denominator) <= SmallFraction*math.Abs(scale) || denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}
