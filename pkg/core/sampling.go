package core

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D sample or offset
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SamplePointInUnitDisk maps a square sample uniformly onto the unit disk
// using the concentric mapping, which avoids rejection sampling
func SamplePointInUnitDisk(sample Vec2) Vec2 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return Vec2{}
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// StratifiedSamples returns jittered offsets in [0,1)² laid out on a
// side×side grid, one per cell, where side = ceil(sqrt(n))
func StratifiedSamples(n int, sampler Sampler) []Vec2 {
	if n <= 1 {
		return []Vec2{NewVec2(0.5, 0.5)}
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))
	cell := 1.0 / float64(side)
	samples := make([]Vec2, 0, side*side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			jitter := sampler.Get2D()
			samples = append(samples, NewVec2(
				(float64(col)+jitter.X)*cell,
				(float64(row)+jitter.Y)*cell,
			))
		}
	}
	return samples
}
