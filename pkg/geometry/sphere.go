package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	center core.Point3
	radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, opts ...Option) (*Sphere, error) {
	if radius <= 0 || core.IsZero(radius) {
		return nil, fmt.Errorf("sphere radius %f: %w", radius, ErrBadRadius)
	}
	return &Sphere{surface: newSurface(opts), center: center, radius: radius}, nil
}

// Center returns the sphere center
func (s *Sphere) Center() core.Point3 {
	return s.center
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Normal returns the outward normal (from center to point)
func (s *Sphere) Normal(point core.Point3) core.Vec3 {
	return point.Subtract(s.center).Normalize()
}

// FindIntersections returns 0, 1 or 2 hits ordered by distance from the ray origin
func (s *Sphere) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	return hitsFor(s, s.intersect(ray, maxDistance))
}

func (s *Sphere) intersect(ray core.Ray, maxDistance float64) []core.Point3 {
	// Vector from ray origin to sphere center
	u := s.center.Subtract(ray.Origin)
	if u.IsZero() {
		// Origin at the center: the only forward hit is one radius away
		if !validDistance(s.radius, maxDistance) {
			return nil
		}
		return []core.Point3{ray.PointAt(s.radius)}
	}

	// Direction is unit, so the quadratic reduces to t = tm ± th
	tm := ray.Direction.Dot(u)
	dSquared := u.LengthSquared() - tm*tm
	thSquared := core.AlignZero(s.radius*s.radius - dSquared)
	if thSquared < 0 {
		return nil
	}

	var points []core.Point3
	if thSquared == 0 {
		// Tangent: a single touching point
		if validDistance(tm, maxDistance) {
			points = append(points, ray.PointAt(tm))
		}
		return points
	}

	th := math.Sqrt(thSquared)
	for _, t := range [2]float64{tm - th, tm + th} {
		if validDistance(t, maxDistance) {
			points = append(points, ray.PointAt(t))
		}
	}
	return points
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.radius, s.radius, s.radius)
	return core.NewAABB(
		s.center.Add(radius.Negate()),
		s.center.Add(radius),
	)
}
