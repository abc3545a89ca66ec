package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func zAxis() core.Ray {
	return core.NewRay(core.Origin, core.NewVec3(0, 0, 1))
}

func TestTube_Normal(t *testing.T) {
	tube, err := NewTube(zAxis(), 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		point    core.Point3
		expected core.Vec3
	}{
		{"above axis origin", core.NewPoint3(1, 0, 5), core.NewVec3(1, 0, 0)},
		{"level with axis origin", core.NewPoint3(0, -1, 0), core.NewVec3(0, -1, 0)},
		{"below axis origin", core.NewPoint3(0, 1, -3), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tube.Normal(tt.point)
			if n.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestTube_FindIntersections(t *testing.T) {
	tube, err := NewTube(zAxis(), 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected []core.Point3
	}{
		{"crosses twice", core.NewRay(core.NewPoint3(-2, 0, 0.5), core.NewVec3(1, 0, 0)), []core.Point3{core.NewPoint3(-1, 0, 0.5), core.NewPoint3(1, 0, 0.5)}},
		{"skewed", core.NewRay(core.NewPoint3(-2, 0, -3), core.NewVec3(1, 0, 1)), []core.Point3{core.NewPoint3(-1, 0, -2), core.NewPoint3(1, 0, 0)}},
		{"starts inside", core.NewRay(core.NewPoint3(0, 0, 7), core.NewVec3(1, 0, 0)), []core.Point3{core.NewPoint3(1, 0, 7)}},
		{"tangent", core.NewRay(core.NewPoint3(-2, 1, 0), core.NewVec3(1, 0, 0)), []core.Point3{core.NewPoint3(0, 1, 0)}},
		{"parallel to axis", core.NewRay(core.NewPoint3(0.5, 0, 0), core.NewVec3(0, 0, 1)), nil},
		{"misses", core.NewRay(core.NewPoint3(-2, 3, 0), core.NewVec3(1, 0, 0)), nil},
		{"points away", core.NewRay(core.NewPoint3(-2, 0, 0), core.NewVec3(-1, 0, 0)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := tube.FindIntersections(tt.ray, math.Inf(1), false)
			if len(tt.expected) == 0 {
				if hits != nil {
					t.Fatalf("Expected no intersections, got %v", hits)
				}
				return
			}
			if len(hits) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(hits))
			}
			for i, hit := range hits {
				if hit.Point.Distance(tt.expected[i]) > 1e-9 {
					t.Errorf("Hit %d: expected %v, got %v", i, tt.expected[i], hit.Point)
				}
			}
		})
	}
}

func TestTube_IsUnbounded(t *testing.T) {
	tube, _ := NewTube(zAxis(), 2)
	if !tube.BoundingBox().Unbounded {
		t.Error("Expected tube bounding box to be unbounded")
	}
	if _, err := NewTube(zAxis(), 0); !errors.Is(err, ErrBadRadius) {
		t.Errorf("Expected ErrBadRadius, got %v", err)
	}
}
