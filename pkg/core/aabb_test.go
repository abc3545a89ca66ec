package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))

	tests := []struct {
		name        string
		ray         Ray
		maxDistance float64
		expected    bool
	}{
		{"straight through", NewRay(NewPoint3(-5, 0, 0), NewVec3(1, 0, 0)), math.Inf(1), true},
		{"pointing away", NewRay(NewPoint3(-5, 0, 0), NewVec3(-1, 0, 0)), math.Inf(1), false},
		{"origin inside", NewRay(NewPoint3(0, 0, 0), NewVec3(0, 1, 0)), math.Inf(1), true},
		{"parallel inside slab", NewRay(NewPoint3(-5, 0.5, 0.5), NewVec3(1, 0, 0)), math.Inf(1), true},
		{"parallel outside slab", NewRay(NewPoint3(-5, 2, 0), NewVec3(1, 0, 0)), math.Inf(1), false},
		{"nearly parallel drifting in", NewRay(NewPoint3(-5, 1+1e-7, 0), NewVec3(1, -5e-8, 0)), math.Inf(1), true},
		{"nearly parallel drifting away", NewRay(NewPoint3(-5, 1+1e-7, 0), NewVec3(1, 5e-8, 0)), math.Inf(1), false},
		{"diagonal miss", NewRay(NewPoint3(-5, 3, 0), NewVec3(1, 0.1, 0)), math.Inf(1), false},
		{"beyond max distance", NewRay(NewPoint3(-5, 0, 0), NewVec3(1, 0, 0)), 3, false},
		{"within max distance", NewRay(NewPoint3(-5, 0, 0), NewVec3(1, 0, 0)), 4.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.maxDistance); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitFlatBox(t *testing.T) {
	// A triangle lying in y=0 has a zero-thickness box
	box := NewAABB(NewPoint3(-2, 0, 0), NewPoint3(4, 0, 3))
	ray := NewRay(NewPoint3(0, 2, 1.5), NewVec3(1, -3, 0.5))

	if !box.Hit(ray, math.Inf(1)) {
		t.Error("Expected ray crossing the flat box to hit")
	}
}

func TestAABB_UnboundedAlwaysHits(t *testing.T) {
	box := UnboundedAABB()
	ray := NewRay(NewPoint3(1e9, 1e9, 1e9), NewVec3(1, 1, 1))
	if !box.Hit(ray, 1) {
		t.Error("Expected unbounded box to always report a hit")
	}
}

func TestAABB_DistanceTo(t *testing.T) {
	a := NewAABB(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))

	tests := []struct {
		name     string
		other    AABB
		expected float64
	}{
		{"overlapping", NewAABB(NewPoint3(0.5, 0.5, 0.5), NewPoint3(2, 2, 2)), 0},
		{"touching", NewAABB(NewPoint3(1, 0, 0), NewPoint3(2, 1, 1)), 0},
		{"gap on X", NewAABB(NewPoint3(3, 0, 0), NewPoint3(4, 1, 1)), 2},
		{"gap on X and Y", NewAABB(NewPoint3(4, 5, 0), NewPoint3(5, 6, 1)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := a.DistanceTo(tt.other)
			if math.Abs(d-tt.expected) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.expected, d)
			}
			if back := tt.other.DistanceTo(a); math.Abs(back-d) > 1e-12 {
				t.Errorf("Expected symmetric distance, got %f and %f", d, back)
			}
		})
	}
}

func TestAABB_DistanceMonotonic(t *testing.T) {
	a := NewAABB(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))
	previous := -1.0
	for offset := 2.0; offset < 10; offset++ {
		b := NewAABB(NewPoint3(offset, offset, 0), NewPoint3(offset+1, offset+1, 1))
		d := a.DistanceTo(b)
		if d <= previous {
			t.Fatalf("Expected distance to grow with separation, got %f after %f", d, previous)
		}
		previous = d
	}
}

func TestAABB_UnionContainsBoth(t *testing.T) {
	a := NewAABB(NewPoint3(-1, 0, 2), NewPoint3(0, 1, 3))
	b := NewAABB(NewPoint3(5, -3, -1), NewPoint3(6, -2, 0))

	u := a.Union(b)
	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("Expected union %v to contain %v and %v", u, a, b)
	}
	if u.Contains(UnboundedAABB()) {
		t.Error("Expected bounded box not to contain an unbounded one")
	}
}
