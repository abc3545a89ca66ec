package core

import (
	"errors"
	"math"
)

// ErrZeroVector is raised when a direction is built from or normalized to a zero-length vector
var ErrZeroVector = errors.New("zero-length vector")

// Vec3 represents a 3D direction vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewDirection creates a Vec3 and rejects the zero vector
func NewDirection(x, y, z float64) (Vec3, error) {
	v := Vec3{X: x, Y: y, Z: z}
	if v.IsZero() {
		return Vec3{}, ErrZeroVector
	}
	return v, nil
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// IsZero reports whether every component is within Epsilon of zero
func (v Vec3) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y) && IsZero(v.Z)
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector is a programming error and panics with ErrZeroVector.
func (v Vec3) Normalize() Vec3 {
	n, err := v.TryNormalize()
	if err != nil {
		panic(err)
	}
	return n
}

// TryNormalize is Normalize for callers that can report the error instead
func (v Vec3) TryNormalize() (Vec3, error) {
	length := v.Length()
	if IsZero(length) {
		return Vec3{}, ErrZeroVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// Reflect mirrors v about the given unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Point3 is an affine position. It shares Vec3's layout but not its algebra:
// points subtract to vectors and translate by vectors.
type Point3 struct {
	X, Y, Z float64
}

// Origin is the point (0,0,0)
var Origin = Point3{}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add translates the point by a vector
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point3) Subtract(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceSquared returns the squared distance between two points
func (p Point3) DistanceSquared(other Point3) float64 {
	return p.Subtract(other).LengthSquared()
}

// Distance returns the distance between two points
func (p Point3) Distance(other Point3) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// Equals compares two points within Epsilon per axis
func (p Point3) Equals(other Point3) bool {
	return p.Subtract(other).IsZero()
}

// Axis returns the coordinate for axis 0=X, 1=Y, 2=Z
func (p Point3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Axis returns the component for axis 0=X, 1=Y, 2=Z
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
