package core

// RayOffset is how far secondary rays are pushed off their surface along the normal
const RayOffset = 0.1

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction.
// A zero direction panics with ErrZeroVector.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewOffsetRay creates a ray leaving a surface point. The origin is moved by
// RayOffset along the normal, towards the side the direction points into.
func NewOffsetRay(point Point3, direction, normal Vec3) Ray {
	nv := direction.Dot(normal)
	if IsZero(nv) {
		return NewRay(point, direction)
	}
	delta := normal.Multiply(RayOffset)
	if nv < 0 {
		delta = delta.Negate()
	}
	return NewRay(point.Add(delta), direction)
}

// PointAt returns the point at parameter t along the ray
func (r Ray) PointAt(t float64) Point3 {
	if IsZero(t) {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}
