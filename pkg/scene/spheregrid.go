package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to a 0..255 color
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	clamp := func(v float64) float64 { return 255 * math.Max(0, math.Min(1, v)) }
	return core.NewColor(clamp(r), clamp(g), clamp(blue))
}

// NewSphereGridScene creates a gridSize×gridSize field of colored spheres on a
// reflective plane. It is the BVH stress scene.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Location: core.NewPoint3(4.5, 4.5, 20),
		Forward:  core.NewVec3(0, -0.5, -2),
		Up:       core.NewVec3(0, 2, -0.5),
		Distance: 12,
		Width:    8,
		Height:   6,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("sphere-grid",
		WithCamera(cameraConfig),
		WithImageSize(800, 600),
		WithBackground(core.NewColor(120, 170, 230)),
	)

	s.Add(mustPlane(core.Origin, core.NewVec3(0, 1, 0),
		geometry.WithEmission(core.NewColor(20, 20, 20)),
		geometry.WithMaterial(material.Matte(0.5).WithKR(0.2))))

	gridSize := 10
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i) * spacing
			z := float64(j) * spacing

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)

			s.Add(mustSphere(core.NewPoint3(x, sphereRadius, z), sphereRadius,
				geometry.WithEmission(oklchToRGB(baseLightness, chroma, hue).Scale(0.3)),
				geometry.WithMaterial(material.Plastic(0.6, 0.4, 50).WithKR(0.25))))
		}
	}

	s.AddLights(
		mustDirectional(core.NewColor(180, 170, 160), core.NewVec3(-1, -2, -1)),
		mustDirectional(core.NewColor(40, 50, 70), core.NewVec3(1, -1, 0.5)),
	)

	return s
}
