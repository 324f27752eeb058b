// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// WithinRelativeTolerance checks if two values agree to within a relative
// tolerance, falling back to absolute comparison near zero.
func WithinRelativeTolerance(val1, val2, tolerance float64) bool {
	diff := math.Abs(val1 - val2)
	scale := math.Max(math.Abs(val1), math.Abs(val2))
	if scale < 1.0 {
		return diff <= tolerance
	}
	return diff/scale <= tolerance
}
