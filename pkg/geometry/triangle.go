package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	surface
	face convexFace
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point3, opts ...Option) (*Triangle, error) {
	face, err := newConvexFace([]core.Point3{v0, v1, v2})
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	return &Triangle{surface: newSurface(opts), face: face}, nil
}

// Vertices returns the three vertices in order
func (t *Triangle) Vertices() (v0, v1, v2 core.Point3) {
	return t.face.vertices[0], t.face.vertices[1], t.face.vertices[2]
}

// Normal returns the triangle's plane normal
func (t *Triangle) Normal(core.Point3) core.Vec3 {
	return t.face.plane.normal
}

// FindIntersections returns the hit inside the triangle; edges count as misses
func (t *Triangle) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	return hitsFor(t, t.face.intersect(ray, maxDistance))
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.face.box
}
