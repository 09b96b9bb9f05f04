package numberutils

import "math"

// RoundHalfUp rounds to the nearest integer, sending .5 towards positive infinity
// (-2.5 becomes -2, 2.5 becomes 3).
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
