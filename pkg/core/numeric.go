package core

import "math"

// Epsilon is the tolerance below which a value is treated as zero
const Epsilon = 1e-10

// IsZero reports whether x is within Epsilon of zero
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// AlignZero snaps values within Epsilon of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// SameSign reports whether a and b are both strictly positive or both strictly negative
func SameSign(a, b float64) bool {
	return a*b > 0
}
