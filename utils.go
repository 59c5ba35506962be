package airfoil

import "math"

const pi = math.Pi

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
