package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Tube is an infinite open cylinder around an axis ray
type Tube struct {
	surface
	axis   core.Ray
	radius float64
}

// NewTube creates an infinite tube of the given radius around axis
func NewTube(axis core.Ray, radius float64, opts ...Option) (*Tube, error) {
	if radius <= 0 || core.IsZero(radius) {
		return nil, fmt.Errorf("tube radius %f: %w", radius, ErrBadRadius)
	}
	return &Tube{surface: newSurface(opts), axis: axis, radius: radius}, nil
}

// Axis returns the tube's axis ray
func (t *Tube) Axis() core.Ray {
	return t.axis
}

// Radius returns the tube radius
func (t *Tube) Radius() float64 {
	return t.radius
}

// Normal is the part of (point - axis origin) orthogonal to the axis, normalized
func (t *Tube) Normal(point core.Point3) core.Vec3 {
	return radialNormal(t.axis, point)
}

func radialNormal(axis core.Ray, point core.Point3) core.Vec3 {
	height := core.AlignZero(axis.Direction.Dot(point.Subtract(axis.Origin)))
	return point.Subtract(axis.PointAt(height)).Normalize()
}

// FindIntersections returns up to two hits with the lateral surface
func (t *Tube) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	return hitsFor(t, tubeIntersect(t.axis, t.radius, ray, maxDistance, nil))
}

// tubeIntersect solves the quadratic of the ray projected onto the plane
// perpendicular to the axis. keep, when set, filters candidate points.
func tubeIntersect(axis core.Ray, radius float64, ray core.Ray, maxDistance float64, keep func(core.Point3) bool) []core.Point3 {
	va := axis.Direction

	// Ray direction with its axial component removed
	vPerp := ray.Direction.Subtract(va.Multiply(ray.Direction.Dot(va)))
	a := core.AlignZero(vPerp.LengthSquared())
	if a == 0 {
		// Ray parallel to the axis never crosses the lateral surface
		return nil
	}

	// Offset from axis origin to ray origin with its axial component removed
	delta := ray.Origin.Subtract(axis.Origin)
	dPerp := delta.Subtract(va.Multiply(delta.Dot(va)))

	b := 2 * vPerp.Dot(dPerp)
	c := dPerp.LengthSquared() - radius*radius

	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant < 0 {
		return nil
	}

	var roots []float64
	if discriminant == 0 {
		roots = []float64{-b / (2 * a)}
	} else {
		sqrtD := math.Sqrt(discriminant)
		roots = []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
	}

	var points []core.Point3
	for _, root := range roots {
		if !validDistance(root, maxDistance) {
			continue
		}
		p := ray.PointAt(root)
		if keep != nil && !keep(p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

// BoundingBox returns an unbounded box: a tube is infinite
func (t *Tube) BoundingBox() core.AABB {
	return core.UnboundedAABB()
}
