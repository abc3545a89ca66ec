package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// convexFace is the shared inside test for triangles and polygons: a
// supporting plane plus an ordered ring of convex, coplanar vertices
type convexFace struct {
	vertices []core.Point3
	plane    *Plane
	box      core.AABB
}

// newConvexFace validates the vertex ring. Checks run in order: vertex count,
// consecutive duplicates, coplanarity with the first three, consistent turning.
func newConvexFace(vertices []core.Point3) (convexFace, error) {
	n := len(vertices)
	if n < 3 {
		return convexFace{}, fmt.Errorf("%d vertices: %w", n, ErrTooFewVertices)
	}

	for i := 0; i < n; i++ {
		if vertices[i].Equals(vertices[(i+1)%n]) {
			return convexFace{}, fmt.Errorf("vertices %d and %d: %w", i, (i+1)%n, ErrDuplicateVertex)
		}
	}

	normal, err := planeNormal(vertices[0], vertices[1], vertices[2])
	if err != nil {
		return convexFace{}, err
	}

	for i := 3; i < n; i++ {
		if !core.IsZero(normal.Dot(vertices[i].Subtract(vertices[0]))) {
			return convexFace{}, fmt.Errorf("vertex %d: %w", i, ErrNonPlanar)
		}
	}

	// Every pair of consecutive edges must turn the same way around the normal
	var turn float64
	for i := 0; i < n; i++ {
		edge := vertices[(i+1)%n].Subtract(vertices[i])
		next := vertices[(i+2)%n].Subtract(vertices[(i+1)%n])
		sign := core.AlignZero(edge.Cross(next).Dot(normal))
		if sign == 0 || (turn != 0 && !core.SameSign(sign, turn)) {
			return convexFace{}, fmt.Errorf("turn at vertex %d: %w", (i+1)%n, ErrNotConvex)
		}
		turn = sign
	}

	ring := make([]core.Point3, n)
	copy(ring, vertices)

	return convexFace{
		vertices: ring,
		plane:    &Plane{point: ring[0], normal: normal},
		box:      core.NewAABBFromPoints(ring...),
	}, nil
}

// intersect hits the supporting plane, then checks that the ray passes on the
// same side of every edge. A ray grazing an edge or vertex counts as a miss.
func (f convexFace) intersect(ray core.Ray, maxDistance float64) []core.Point3 {
	points := f.plane.intersect(ray, maxDistance)
	if points == nil {
		return nil
	}

	n := len(f.vertices)
	var sign float64
	for i := 0; i < n; i++ {
		v1 := f.vertices[i].Subtract(ray.Origin)
		v2 := f.vertices[(i+1)%n].Subtract(ray.Origin)
		cross := v1.Cross(v2)
		if cross.IsZero() {
			return nil
		}
		s := core.AlignZero(ray.Direction.Dot(cross.Normalize()))
		if s == 0 || (sign != 0 && !core.SameSign(s, sign)) {
			return nil
		}
		sign = s
	}
	return points
}

// Polygon is a flat convex polygon with N ordered vertices
type Polygon struct {
	surface
	face convexFace
}

// NewPolygon creates a polygon, rejecting degenerate, non-planar and concave vertex rings
func NewPolygon(vertices []core.Point3, opts ...Option) (*Polygon, error) {
	face, err := newConvexFace(vertices)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	return &Polygon{surface: newSurface(opts), face: face}, nil
}

// Vertices returns a copy of the vertex ring
func (p *Polygon) Vertices() []core.Point3 {
	return append([]core.Point3(nil), p.face.vertices...)
}

// Normal returns the polygon's plane normal
func (p *Polygon) Normal(core.Point3) core.Vec3 {
	return p.face.plane.normal
}

// FindIntersections returns the single hit inside the polygon, if any
func (p *Polygon) FindIntersections(ray core.Ray, maxDistance float64, _ bool) []Intersection {
	return hitsFor(p, p.face.intersect(ray, maxDistance))
}

// BoundingBox returns the box around the vertices
func (p *Polygon) BoundingBox() core.AABB {
	return p.face.box
}
