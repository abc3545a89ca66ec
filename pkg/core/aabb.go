package core

import "math"

// boxPadding widens degenerate (flat) boxes so the slab test stays inclusive
// under floating point error
const boxPadding = 1e-9

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min       Point3 // Minimum corner
	Max       Point3 // Maximum corner
	Unbounded bool   // Infinite extent; never clustered, never pruned
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point3) AABB {
	return AABB{Min: min, Max: max}
}

// UnboundedAABB returns the box used by infinite primitives
func UnboundedAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min:       NewPoint3(-inf, -inf, -inf),
		Max:       NewPoint3(inf, inf, inf),
		Unbounded: true,
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// It reports true when the parametric overlap of the three slabs is non-empty,
// reaches ahead of the ray origin and starts no farther than maxDistance.
func (aabb AABB) Hit(ray Ray, maxDistance float64) bool {
	if aabb.Unbounded {
		return true
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis) - boxPadding
		max := aabb.Max.Axis(axis) + boxPadding
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Only an exactly parallel ray stays at its origin's coordinate; a tiny
		// component still drifts into the slab further along
		invDirection := 1.0 / direction
		if direction == 0 || math.IsInf(invDirection, 0) {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection

		// Ensure t1 <= t2 (swap if needed)
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return false
		}
	}

	return tMax > 0 && tMin <= maxDistance
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	if aabb.Unbounded || other.Unbounded {
		return UnboundedAABB()
	}
	min := Point3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Point3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	if aabb.Unbounded {
		return true
	}
	if other.Unbounded {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		if other.Min.Axis(axis) < aabb.Min.Axis(axis) || other.Max.Axis(axis) > aabb.Max.Axis(axis) {
			return false
		}
	}
	return true
}

// DistanceTo is a clustering heuristic: zero when the boxes overlap or touch,
// otherwise the length of the per-axis gap between them. It is symmetric.
func (aabb AABB) DistanceTo(other AABB) float64 {
	if aabb.Unbounded || other.Unbounded {
		return math.Inf(1)
	}
	gaps := [3]float64{}
	for axis := 0; axis < 3; axis++ {
		below := other.Min.Axis(axis) - aabb.Max.Axis(axis)
		above := aabb.Min.Axis(axis) - other.Max.Axis(axis)
		gaps[axis] = math.Max(0, math.Max(below, above))
	}
	return NewVec3(gaps[0], gaps[1], gaps[2]).Length()
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point3 {
	return Point3{
		X: (aabb.Min.X + aabb.Max.X) * 0.5,
		Y: (aabb.Min.Y + aabb.Max.Y) * 0.5,
		Z: (aabb.Min.Z + aabb.Max.Z) * 0.5,
	}
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
