package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func colorsClose(a, b core.Color) bool {
	return math.Abs(a.R-b.R) < 1e-9 && math.Abs(a.G-b.G) < 1e-9 && math.Abs(a.B-b.B) < 1e-9
}

func TestAmbient(t *testing.T) {
	a := NewAmbient(core.NewColor(100, 200, 50), core.NewCoeff(0.1))
	expected := core.NewColor(10, 20, 5)
	if !colorsClose(a.Intensity(), expected) {
		t.Errorf("Expected %v, got %v", expected, a.Intensity())
	}
	if NoAmbient().Intensity() != core.Black {
		t.Errorf("Expected black, got %v", NoAmbient().Intensity())
	}
}

func TestDirectional(t *testing.T) {
	d, err := NewDirectional(core.NewColor(1, 1, 1), core.NewVec3(0, 0, -2))
	if err != nil {
		t.Fatal(err)
	}
	p := core.NewPoint3(3, -4, 5)
	if d.Direction(p) != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected normalized direction, got %v", d.Direction(p))
	}
	if !math.IsInf(d.Distance(p), 1) {
		t.Errorf("Expected infinite distance, got %f", d.Distance(p))
	}
	if _, err := NewDirectional(core.Black, core.Vec3{}); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPoint_Attenuation(t *testing.T) {
	base := NewPoint(core.NewColor(100, 100, 100), core.Origin)
	p := core.NewPoint3(0, 0, 2)

	tests := []struct {
		name     string
		light    *Point
		expected float64
	}{
		{"no attenuation", base, 100},
		{"constant", base.WithAttenuation(2, 0, 0), 50},
		{"linear", base.WithAttenuation(1, 1, 0), 100.0 / 3},
		{"quadratic", base.WithAttenuation(1, 0, 1), 20},
		{"all terms", base.WithAttenuation(1, 0.5, 0.25), 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.Intensity(p)
			if math.Abs(got.R-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got.R)
			}
		})
	}

	if base.Intensity(p).R != 100 {
		t.Error("WithAttenuation must not modify the original light")
	}
}

func TestPoint_DirectionAndDistance(t *testing.T) {
	light := NewPoint(core.NewColor(1, 1, 1), core.NewPoint3(1, 1, 1))
	p := core.NewPoint3(1, 1, 4)
	if light.Direction(p) != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected direction from light to point, got %v", light.Direction(p))
	}
	if light.Distance(p) != 3 {
		t.Errorf("Expected distance 3, got %f", light.Distance(p))
	}
	if !light.Direction(light.Position()).IsZero() {
		t.Errorf("Expected zero direction at the light position, got %v", light.Direction(light.Position()))
	}
}

func TestSpot_Intensity(t *testing.T) {
	spot, err := NewSpot(core.NewColor(10, 10, 10), core.Origin, core.NewVec3(0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		light    *Spot
		point    core.Point3
		expected float64
	}{
		{"on beam", spot, core.NewPoint3(0, 0, -5), 10},
		{"45 degrees", spot, core.NewPoint3(1, 0, -1), 10 * math.Sqrt2 / 2},
		{"perpendicular", spot, core.NewPoint3(1, 0, 0), 0},
		{"behind", spot, core.NewPoint3(0, 0, 5), 0},
		{"behind and off axis", spot, core.NewPoint3(3, 1, 2), 0},
		{"narrow beam", spot.NarrowBeam(2), core.NewPoint3(1, 0, -1), 5},
		{"attenuated", spot.WithAttenuation(1, 0, 1), core.NewPoint3(0, 0, -2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.Intensity(tt.point)
			if math.Abs(got.R-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got.R)
			}
		})
	}
}

func TestSpot_BehindIsExactlyZero(t *testing.T) {
	spot, err := NewSpot(core.NewColor(1, 1, 1), core.NewPoint3(0, 0, 0), core.NewVec3(1, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []core.Point3{
		core.NewPoint3(-1, -1, 0),
		core.NewPoint3(-5, 0, 3),
		core.NewPoint3(0, -2, -2),
	} {
		if got := spot.Intensity(p); got != core.Black {
			t.Errorf("Expected exactly black behind the beam at %v, got %v", p, got)
		}
	}
	if _, err := NewSpot(core.Black, core.Origin, core.Vec3{}); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}
