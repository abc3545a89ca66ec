package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestTriangle_FindIntersections(t *testing.T) {
	triangle, err := NewTriangle(core.NewPoint3(0, 3, -2), core.NewPoint3(1, 1, -2), core.NewPoint3(0, -1, -2))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected *core.Point3
	}{
		{"inside", core.NewRay(core.NewPoint3(0.5, 1, 0), core.NewVec3(0, 0, -1)), ptr(core.NewPoint3(0.5, 1, -2))},
		{"outside against edge", core.NewRay(core.NewPoint3(1, 2, 0), core.NewVec3(0, 0, -1)), nil},
		{"outside against vertex", core.NewRay(core.NewPoint3(2, 1, 0), core.NewVec3(0, 0, -1)), nil},
		{"on edge", core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, 0, -1)), nil},
		{"on vertex", core.NewRay(core.NewPoint3(1, 1, 0), core.NewVec3(0, 0, -1)), nil},
		{"on edge continuation", core.NewRay(core.NewPoint3(0, 4, 0), core.NewVec3(0, 0, -1)), nil},
		{"behind origin", core.NewRay(core.NewPoint3(0.5, 1, -3), core.NewVec3(0, 0, -1)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := triangle.FindIntersections(tt.ray, math.Inf(1), false)
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

func TestTriangle_BoundingBoxEnclosesVertices(t *testing.T) {
	v0, v1, v2 := core.NewPoint3(4, 0, 0), core.NewPoint3(-2, 0, 0), core.NewPoint3(0, 0, 3)
	triangle, err := NewTriangle(v0, v1, v2)
	if err != nil {
		t.Fatal(err)
	}
	box := triangle.BoundingBox()
	if box.Min != core.NewPoint3(-2, 0, 0) || box.Max != core.NewPoint3(4, 0, 3) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}
