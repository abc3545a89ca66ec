package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Spot is a point light whose intensity follows a cosine lobe around its beam:
// point intensity × max(0, beam·dir)^narrowBeam
type Spot struct {
	Point
	beam       core.Vec3
	narrowBeam float64
}

// NewSpot creates a spot light aimed along beam; beam must be non-zero
func NewSpot(intensity core.Color, position core.Point3, beam core.Vec3) (*Spot, error) {
	dir, err := beam.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("spot light beam: %w", err)
	}
	return &Spot{
		Point:      Point{intensity: intensity, position: position, kC: 1},
		beam:       dir,
		narrowBeam: 1,
	}, nil
}

// WithAttenuation returns a copy using the given constant, linear and quadratic factors
func (s *Spot) WithAttenuation(kC, kL, kQ float64) *Spot {
	c := *s
	c.kC, c.kL, c.kQ = kC, kL, kQ
	return &c
}

// NarrowBeam returns a copy whose lobe is raised to exponent n; n < 1 is clamped to 1
func (s *Spot) NarrowBeam(n float64) *Spot {
	c := *s
	c.narrowBeam = math.Max(1, n)
	return &c
}

// Beam returns the unit beam direction
func (s *Spot) Beam() core.Vec3 {
	return s.beam
}

// Intensity is zero anywhere behind the beam's hemisphere
func (s *Spot) Intensity(point core.Point3) core.Color {
	cos := core.AlignZero(s.beam.Dot(s.Point.Direction(point)))
	if cos <= 0 {
		return core.Black
	}
	return s.Point.Intensity(point).Scale(math.Pow(cos, s.narrowBeam))
}
