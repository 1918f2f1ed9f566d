// Package noise implements deterministic lattice hashing, value noise and
// fractal Brownian motion in one, two and three dimensions.
//
// Every function is a pure function of its arguments: there is no package
// state, no random source and no caching, so the functions are safe to call
// from any number of goroutines. All values are float32 because they feed
// the shading hot path directly.
//
// Ranges:
//   - [Hash] returns values in [0, 1).
//   - Value1, Value2 and Value3 return values in [0, 1].
//   - FBM1, FBM2 and FBM3 are normalized by the sum of octave amplitudes and
//     return values in [0, 1].
//
// Value noise uses the quintic fade 6t^5 - 15t^4 + 10t^3, so it is C2
// continuous: offsetting one coordinate smoothly (for example by elapsed
// time) never produces a jump.
package noise

import "github.com/chewxy/math32"

// MaxCoord bounds input coordinates. Beyond it float32 has no fractional
// precision left and the lattice would degenerate.
const MaxCoord = 1 << 23

// Hash returns a pseudo-random value in [0, 1) for the lattice point
// (x, y, z) under seed.
func Hash(seed uint32, x, y, z int32) float32 {
	h := seed ^ 0x9e3779b9
	h = fmix(h ^ uint32(x)*0x85ebca6b)
	h = fmix(h ^ uint32(y)*0xc2b2ae35)
	h = fmix(h ^ uint32(z)*0x27d4eb2f)
	// keep 24 bits so the result is exactly representable as a float32
	return float32(h>>8) * (1.0 / (1 << 24))
}

// fmix is the murmur3 32 bit finalizer.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// fade is the quintic smoothing curve.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// sanitize maps non-finite coordinates to zero and clamps huge ones.
func sanitize(x float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return 0
	}
	if x > MaxCoord {
		return MaxCoord
	}
	if x < -MaxCoord {
		return -MaxCoord
	}
	return x
}

// cell splits x into its lattice index and the fractional offset.
func cell(x float32) (int32, float32) {
	x = sanitize(x)
	f := math32.Floor(x)
	return int32(f), x - f
}

func clamp01(x float32) float32 {
	if !(x >= 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Signed remaps a [0, 1] noise value to [-1, 1].
func Signed(v float32) float32 {
	return v*2 - 1
}
