package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bounce reflects a velocity component off a surface, losing energy.
func Bounce(speed, damping float64) float64 {
	return -speed * damping
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Ramp scales max by gap/ramp, saturating at max. Used for arrive-style steering.
func Ramp(gap, ramp, max float64) float64 {
	return max * math.Min(math.Abs(gap)/ramp, 1)
}

// Ballistic returns the height reached after t ticks from y with velocity vy
// under constant gravity.
func Ballistic(y, vy, gravity, t float64) float64 {
	return y + vy*t + 0.5*gravity*t*t
}
