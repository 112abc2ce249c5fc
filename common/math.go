package common

import "math"

// FloorDiv divides a by b rounding toward negative infinity, so
// FloorDiv(-15, 2) == -8.
func FloorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}
