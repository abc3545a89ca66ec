package material

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestMaterial_WithReturnsIndependentCopy(t *testing.T) {
	base := Plastic(0.5, 0.5, 60)
	shiny := base.WithShininess(300).WithKR(0.4)

	if base.Shininess != 60 {
		t.Errorf("Expected base shininess to stay 60, got %d", base.Shininess)
	}
	if !base.KR.IsZero() {
		t.Errorf("Expected base reflectivity to stay zero, got %v", base.KR)
	}
	if shiny.Shininess != 300 || shiny.KR != core.NewCoeff(0.4) {
		t.Errorf("Expected modified copy, got %+v", shiny)
	}
}

func TestMaterial_PerChannelCoefficients(t *testing.T) {
	m := New().WithKD3(core.NewCoeff3(0.1, 0.2, 0.3)).WithKT3(core.NewCoeff3(0, 0, 0.5))

	if m.KD != core.NewCoeff3(0.1, 0.2, 0.3) {
		t.Errorf("Expected per-channel diffuse, got %v", m.KD)
	}
	if m.IsOpaque() {
		t.Error("Expected material with blue transparency not to be opaque")
	}
	if !Matte(0.8).IsOpaque() {
		t.Error("Expected matte material to be opaque")
	}
}
