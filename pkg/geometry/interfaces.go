package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Intersectable is anything a ray can be tested against: a primitive,
// a BVH node or a whole container.
type Intersectable interface {
	// FindIntersections returns every hit with 0 < distance <= maxDistance,
	// or nil when there is none. With accelerate set, composite nodes prune
	// subtrees whose bounding box the ray misses.
	FindIntersections(ray core.Ray, maxDistance float64, accelerate bool) []Intersection
	BoundingBox() core.AABB
}

// Geometry is a renderable primitive with its own surface properties
type Geometry interface {
	Intersectable
	Normal(point core.Point3) core.Vec3
	Emission() core.Color
	Material() material.Material
}

// Intersection ties a hit point to the primitive it lies on
type Intersection struct {
	Geometry Geometry
	Point    core.Point3
}

// Distance returns how far the hit is from the given origin
func (i Intersection) Distance(origin core.Point3) float64 {
	return i.Point.Distance(origin)
}

// Closest returns the intersection nearest to origin. ok is false for an empty list.
func Closest(intersections []Intersection, origin core.Point3) (closest Intersection, ok bool) {
	best := 0.0
	for _, hit := range intersections {
		d := hit.Point.DistanceSquared(origin)
		if !ok || d < best {
			closest, best, ok = hit, d, true
		}
	}
	return closest, ok
}
