package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// surface carries the immutable emission and material shared by all primitives
type surface struct {
	emission core.Color
	material material.Material
}

// Emission returns the primitive's self color
func (s surface) Emission() core.Color {
	return s.emission
}

// Material returns the primitive's material
func (s surface) Material() material.Material {
	return s.material
}

// Option sets surface properties at construction time
type Option func(*surface)

// WithEmission sets the emission color
func WithEmission(c core.Color) Option {
	return func(s *surface) { s.emission = c }
}

// WithMaterial sets the material
func WithMaterial(m material.Material) Option {
	return func(s *surface) { s.material = m }
}

func newSurface(opts []Option) surface {
	var s surface
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// hitsFor tags points with their primitive, preserving order. Returns nil for no points.
func hitsFor(g Geometry, points []core.Point3) []Intersection {
	if len(points) == 0 {
		return nil
	}
	hits := make([]Intersection, len(points))
	for i, p := range points {
		hits[i] = Intersection{Geometry: g, Point: p}
	}
	return hits
}

// validDistance reports whether a ray parameter lies in (0, maxDistance]
func validDistance(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}
