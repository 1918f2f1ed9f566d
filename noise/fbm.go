package noise

import "github.com/chewxy/math32"

// MaxOctaves caps the number of octaves summed by the FBM functions.
const MaxOctaves = 12

// octaveSeedStep decorrelates successive octaves.
const octaveSeedStep = 0x68e31da4

// Octaves configures a fractal noise sum.
type Octaves struct {
	// Count is the number of noise layers, clamped to [1, MaxOctaves].
	Count int
	// Lacunarity is the frequency multiplier between octaves.
	Lacunarity float32
	// Gain is the amplitude multiplier between octaves.
	Gain float32
}

// DefaultOctaves is five octaves doubling in frequency and halving in
// amplitude.
var DefaultOctaves = Octaves{Count: 5, Lacunarity: 2, Gain: 0.5}

// normalized replaces unusable parameters with defaults.
func (o Octaves) normalized() Octaves {
	if o.Count < 1 {
		o.Count = 1
	}
	if o.Count > MaxOctaves {
		o.Count = MaxOctaves
	}
	if !(o.Lacunarity > 0) || math32.IsInf(o.Lacunarity, 0) {
		o.Lacunarity = DefaultOctaves.Lacunarity
	}
	if !(o.Gain > 0) || math32.IsInf(o.Gain, 0) {
		o.Gain = DefaultOctaves.Gain
	}
	// keep amplitudes and frequencies well inside float32 range
	o.Gain = math32.Min(o.Gain, 4)
	o.Lacunarity = math32.Min(o.Lacunarity, 16)
	return o
}

// FBM1 sums o.Count octaves of Value1. The result is in [0, 1].
func FBM1(seed uint32, x float32, o Octaves) float32 {
	o = o.normalized()
	x = sanitize(x)
	var sum, norm float32
	amp, freq := float32(0.5), float32(1)
	for i := 0; i < o.Count; i++ {
		sum += amp * Value1(seed+uint32(i)*octaveSeedStep, x*freq)
		norm += amp
		amp *= o.Gain
		freq *= o.Lacunarity
	}
	return clamp01(sum / norm)
}

// FBM2 sums o.Count octaves of Value2. The result is in [0, 1].
func FBM2(seed uint32, x, y float32, o Octaves) float32 {
	o = o.normalized()
	x, y = sanitize(x), sanitize(y)
	var sum, norm float32
	amp, freq := float32(0.5), float32(1)
	for i := 0; i < o.Count; i++ {
		sum += amp * Value2(seed+uint32(i)*octaveSeedStep, x*freq, y*freq)
		norm += amp
		amp *= o.Gain
		freq *= o.Lacunarity
	}
	return clamp01(sum / norm)
}

// FBM3 sums o.Count octaves of Value3. The result is in [0, 1].
func FBM3(seed uint32, x, y, z float32, o Octaves) float32 {
	o = o.normalized()
	x, y, z = sanitize(x), sanitize(y), sanitize(z)
	var sum, norm float32
	amp, freq := float32(0.5), float32(1)
	for i := 0; i < o.Count; i++ {
		sum += amp * Value3(seed+uint32(i)*octaveSeedStep, x*freq, y*freq, z*freq)
		norm += amp
		amp *= o.Gain
		freq *= o.Lacunarity
	}
	return clamp01(sum / norm)
}
