package pricing

import "math"

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mean returns the arithmetic mean of values, or 0 for an empty slice.
// Every mean computation in the engine goes through here so that empty
// windows can never divide by zero.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// roundCents rounds to 2 decimal places, half up on the cent.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
