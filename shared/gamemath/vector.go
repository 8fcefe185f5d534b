package gamemath

import "math"

// Length returns the magnitude of (x, y).
func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Distance returns the distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return Length(x2-x1, y2-y1)
}

// Polar returns the point at angle and dist from (cx, cy).
func Polar(cx, cy, angle, dist float64) (x, y float64) {
	return cx + math.Cos(angle)*dist, cy + math.Sin(angle)*dist
}

// ClampLength scales (x, y) down so its magnitude is at most max.
func ClampLength(x, y, max float64) (float64, float64) {
	l := Length(x, y)
	if l > max {
		s := max / l
		return x * s, y * s
	}
	return x, y
}

// NormalizeAngle maps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// MirrorAngle reflects a direction across the vertical axis.
func MirrorAngle(a float64) float64 {
	return math.Pi - a
}
