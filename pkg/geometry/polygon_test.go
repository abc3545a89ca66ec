package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewPolygon_Validation(t *testing.T) {
	p := core.NewPoint3

	tests := []struct {
		name     string
		vertices []core.Point3
		wantErr  error
	}{
		{"convex quad", []core.Point3{p(0, 0, 1), p(1, 0, 0), p(0, 1, 0), p(-1, 1, 1)}, nil},
		{"square", []core.Point3{p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0)}, nil},
		{"convex pentagon", []core.Point3{p(0, 0, 0), p(2, 0, 0), p(3, 1, 0), p(1, 3, 0), p(-1, 1, 0)}, nil},
		{"too few vertices", []core.Point3{p(0, 0, 0), p(1, 0, 0)}, ErrTooFewVertices},
		{"consecutive duplicate", []core.Point3{p(0, 0, 0), p(1, 0, 0), p(1, 0, 0), p(0, 1, 0)}, ErrDuplicateVertex},
		{"last equals first", []core.Point3{p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 0, 0)}, ErrDuplicateVertex},
		{"first three collinear", []core.Point3{p(0, 0, 0), p(1, 0, 0), p(2, 0, 0), p(0, 1, 0)}, ErrCollinear},
		{"vertex off plane", []core.Point3{p(0, 0, 1), p(1, 0, 0), p(0, 1, 0), p(-2, 0.5, 2)}, ErrNonPlanar},
		{"concave order", []core.Point3{p(0, 0, 1), p(0, 1, 0), p(1, 0, 0), p(-1, 1, 1)}, ErrNotConvex},
		{"bowtie", []core.Point3{p(0, 0, 0), p(1, 1, 0), p(1, 0, 0), p(0, 1, 0)}, ErrNotConvex},
		{"reflex vertex", []core.Point3{p(0, 0, 0), p(2, 0, 0), p(1, 0.5, 0), p(2, 2, 0), p(0, 2, 0)}, ErrNotConvex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.vertices)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Expected error to wrap ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestPolygon_Normal(t *testing.T) {
	poly, err := NewPolygon([]core.Point3{
		core.NewPoint3(0, 0, 1), core.NewPoint3(1, 0, 0), core.NewPoint3(0, 1, 0), core.NewPoint3(-1, 1, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	sqrt3 := math.Sqrt(1.0 / 3)
	expected := core.NewVec3(sqrt3, sqrt3, sqrt3)
	if poly.Normal(core.NewPoint3(0, 0, 1)).Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, poly.Normal(core.NewPoint3(0, 0, 1)))
	}
}

func TestPolygon_FindIntersections(t *testing.T) {
	poly, err := NewPolygon([]core.Point3{
		core.NewPoint3(0, 0, 1), core.NewPoint3(1, 0, 0), core.NewPoint3(0, 1, 0), core.NewPoint3(-1, 1, 1),
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected *core.Point3
	}{
		{"inside", core.NewRay(core.NewPoint3(1, 1, 1), core.NewVec3(-1, -1, -1)), ptr(core.NewPoint3(1.0/3, 1.0/3, 1.0/3))},
		{"outside", core.NewRay(core.NewPoint3(1, 0, 3), core.NewVec3(-1, -1, -1)), nil},
		{"on edge", core.NewRay(core.NewPoint3(1.5, 1, 1.5), core.NewVec3(-1, -1, -1)), nil},
		{"on vertex", core.NewRay(core.NewPoint3(2, 1, 1), core.NewVec3(-1, -1, -1)), nil},
		{"parallel", core.NewRay(core.NewPoint3(3, 3, 3), core.NewVec3(1, -1, 0)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := poly.FindIntersections(tt.ray, math.Inf(1), false)
			if tt.expected == nil {
				if hits != nil {
					t.Fatalf("Expected no intersection, got %v", hits)
				}
				return
			}
			if len(hits) != 1 {
				t.Fatalf("Expected 1 intersection, got %d", len(hits))
			}
			if hits[0].Point.Distance(*tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", *tt.expected, hits[0].Point)
			}
		})
	}
}
