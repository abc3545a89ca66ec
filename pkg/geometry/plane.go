package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	surface
	point  core.Point3 // A point on the plane
	normal core.Vec3   // Unit normal
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point core.Point3, normal core.Vec3, opts ...Option) (*Plane, error) {
	n, err := normal.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w: %w", ErrZeroDirection, err)
	}
	return &Plane{surface: newSurface(opts), point: point, normal: n}, nil
}

// NewPlaneFromPoints creates the plane through three points.
// Coinciding or collinear points are rejected.
func NewPlaneFromPoints(p1, p2, p3 core.Point3, opts ...Option) (*Plane, error) {
	normal, err := planeNormal(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: newSurface(opts), point: p1, normal: normal}, nil
}

// planeNormal returns the unit normal of the plane through three points
func planeNormal(p1, p2, p3 core.Point3) (core.Vec3, error) {
	if p1.Equals(p2) || p2.Equals(p3) || p1.Equals(p3) {
		return core.Vec3{}, fmt.Errorf("plane through %v, %v, %v: %w", p1, p2, p3, ErrDuplicateVertex)
	}
	normal, err := p2.Subtract(p1).Cross(p3.Subtract(p2)).TryNormalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("plane through %v, %v, %v: %w", p1, p2, p3, ErrCollinear)
	}
	return normal, nil
}

// Point returns the reference point of the plane
func (p *Plane) Point() core.Point3 {
	return p.point
}

// Normal returns the plane normal; it is the same at every point
func (p *Plane) Normal(core.Point3) core.Vec3 {
	return p.normal
}

// FindIntersections solves the parametric line-plane equation
func (p *Plane) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	return hitsFor(p, p.intersect(ray, maxDistance))
}

// intersect returns the single crossing point, or nil when the ray is parallel,
// starts on the plane or points away from it
func (p *Plane) intersect(ray core.Ray, maxDistance float64) []core.Point3 {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := core.AlignZero(p.normal.Dot(ray.Direction))
	if denominator == 0 {
		return nil
	}

	toPlane := p.point.Subtract(ray.Origin)
	if toPlane.IsZero() {
		return nil
	}

	t := core.AlignZero(p.normal.Dot(toPlane) / denominator)
	if !validDistance(t, maxDistance) {
		return nil
	}
	return []core.Point3{ray.PointAt(t)}
}

// BoundingBox returns an unbounded box: a plane is infinite
func (p *Plane) BoundingBox() core.AABB {
	return core.UnboundedAABB()
}
