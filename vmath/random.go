package vmath

import (
	"math"
	"math/rand/v2"
)

// WeightedIndex draws an index with probability proportional to its weight
// Cumulative subtraction against a uniform sample over the total; falls back to 0
func WeightedIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	sample := r.Float64() * total
	for i, w := range weights {
		sample -= w
		if sample <= 0 {
			return i
		}
	}
	return 0
}

// RandomDrift returns a non-zero step vector with each axis in {-1, 0, 1}
func RandomDrift(r *rand.Rand) (vx, vy int) {
	for vx == 0 && vy == 0 {
		vx = r.IntN(3) - 1
		vy = r.IntN(3) - 1
	}
	return vx, vy
}

// Chance returns true with probability p
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// RoundHalfUp rounds halves towards +Inf
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
