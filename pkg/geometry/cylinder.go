package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cylinder is a tube cut to a height along its axis and closed by two flat caps.
// The base cap is centered on the axis origin.
type Cylinder struct {
	surface
	axis   core.Ray
	radius float64
	height float64
	top    core.Point3
}

// NewCylinder creates a capped cylinder
func NewCylinder(axis core.Ray, radius, height float64, opts ...Option) (*Cylinder, error) {
	if radius <= 0 || core.IsZero(radius) {
		return nil, fmt.Errorf("cylinder radius %f: %w", radius, ErrBadRadius)
	}
	if height <= 0 || core.IsZero(height) {
		return nil, fmt.Errorf("cylinder height %f: %w", height, ErrBadHeight)
	}
	return &Cylinder{
		surface: newSurface(opts),
		axis:    axis,
		radius:  radius,
		height:  height,
		top:     axis.PointAt(height),
	}, nil
}

// Height returns the distance between the caps
func (c *Cylinder) Height() float64 {
	return c.height
}

// Normal returns -axis on the base cap, +axis on the top cap and the radial normal on the side
func (c *Cylinder) Normal(point core.Point3) core.Vec3 {
	h := core.AlignZero(c.axis.Direction.Dot(point.Subtract(c.axis.Origin)))
	onBase := h == 0
	onTop := core.IsZero(h - c.height)
	if onBase || onTop {
		// A rim point sits on both the cap and the side; treat it as cap
		// only when it is strictly inside the radius
		center := c.axis.Origin
		if onTop {
			center = c.top
		}
		if point.DistanceSquared(center) < c.radius*c.radius {
			if onBase {
				return c.axis.Direction.Negate()
			}
			return c.axis.Direction
		}
	}
	return radialNormal(c.axis, point)
}

// FindIntersections returns side and cap hits, ordered by distance
func (c *Cylinder) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	withinHeight := func(p core.Point3) bool {
		h := core.AlignZero(c.axis.Direction.Dot(p.Subtract(c.axis.Origin)))
		return h >= 0 && core.AlignZero(h-c.height) <= 0
	}
	points := tubeIntersect(c.axis, c.radius, ray, maxDistance, withinHeight)
	points = append(points, c.capIntersect(c.axis.Origin, ray, maxDistance)...)
	points = append(points, c.capIntersect(c.top, ray, maxDistance)...)

	sort.Slice(points, func(i, j int) bool {
		return points[i].DistanceSquared(ray.Origin) < points[j].DistanceSquared(ray.Origin)
	})
	return hitsFor(c, points)
}

// capIntersect hits the disc of the cap centered at center. Rim points are left to the side test.
func (c *Cylinder) capIntersect(center core.Point3, ray core.Ray, maxDistance float64) []core.Point3 {
	capPlane := Plane{point: center, normal: c.axis.Direction}
	points := capPlane.intersect(ray, maxDistance)
	if points == nil {
		return nil
	}
	if core.AlignZero(points[0].DistanceSquared(center)-c.radius*c.radius) >= 0 {
		return nil
	}
	return points
}

// BoundingBox returns the tight box of the capped cylinder: the axis segment
// expanded on each axis by radius·sqrt(1 - d²) for axis direction component d
func (c *Cylinder) BoundingBox() core.AABB {
	d := c.axis.Direction
	extent := core.NewVec3(
		c.radius*math.Sqrt(math.Max(0, 1-d.X*d.X)),
		c.radius*math.Sqrt(math.Max(0, 1-d.Y*d.Y)),
		c.radius*math.Sqrt(math.Max(0, 1-d.Z*d.Z)),
	)
	segment := core.NewAABBFromPoints(c.axis.Origin, c.top)
	return core.NewAABB(segment.Min.Add(extent.Negate()), segment.Max.Add(extent))
}
