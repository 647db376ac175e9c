package vmath

import "math"

// --- Interpolation ---

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where v sits between a and b, 0 when a == b
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// --- Clamping ---

// Clamp restricts v to [lo, hi]
// NaN collapses to lo so a bad input can never escape the range
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns 1 for v >= 0 and -1 otherwise
// Zero maps to 1, matching a solution drawn exactly at the center
func Sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Bucket maps v in [lo, hi] to one of n equal buckets [0, n-1]
func Bucket(v, lo, hi float64, n int) int {
	if n <= 1 || hi <= lo {
		return 0
	}
	idx := int(math.Floor(InverseLerp(lo, hi, v) * float64(n)))
	return ClampInt(idx, 0, n-1)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
