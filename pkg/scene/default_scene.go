package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewDefaultScene creates a glass sphere holding an emissive core, resting on
// a matte floor in front of a mirror wall, lit by a spot, a point and a sun
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Location: core.NewPoint3(0, 60, 1000),
		Forward:  core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Distance: 1000,
		Width:    240,
		Height:   240,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("default",
		WithCamera(cameraConfig),
		WithBackground(core.NewColor(15, 20, 35)),
		WithAmbient(lights.NewAmbient(core.NewColor(255, 191, 191), core.NewCoeff(0.05))),
	)

	floor := mustPlane(core.NewPoint3(0, -50, 0), core.NewVec3(0, 1, 0),
		geometry.WithEmission(core.NewColor(20, 20, 20)),
		geometry.WithMaterial(material.Plastic(0.5, 0.2, 20).WithKR(0.15)))

	mirror := mustPolygon([]core.Point3{
		core.NewPoint3(-150, -50, -300),
		core.NewPoint3(150, -50, -300),
		core.NewPoint3(150, 200, -300),
		core.NewPoint3(-150, 200, -300),
	}, geometry.WithEmission(core.NewColor(10, 10, 20)), geometry.WithMaterial(material.Mirror(0.8)))

	shell := mustSphere(core.NewPoint3(0, 0, -100), 50,
		geometry.WithEmission(core.NewColor(0, 0, 100)),
		geometry.WithMaterial(material.Glass(0.6).WithKS(0.5).WithShininess(100)))
	inner := mustSphere(core.NewPoint3(0, 0, -100), 25,
		geometry.WithEmission(core.NewColor(100, 20, 20)),
		geometry.WithMaterial(material.Plastic(0.5, 0.5, 30)))

	left := mustTriangle(
		core.NewPoint3(-140, -50, -150), core.NewPoint3(-70, 70, -140), core.NewPoint3(-75, -50, -150),
		geometry.WithEmission(core.NewColor(20, 80, 20)),
		geometry.WithMaterial(material.Plastic(0.6, 0.8, 60)))
	right := mustTriangle(
		core.NewPoint3(140, -50, -150), core.NewPoint3(75, -50, -150), core.NewPoint3(70, 70, -140),
		geometry.WithEmission(core.NewColor(80, 80, 20)),
		geometry.WithMaterial(material.Plastic(0.6, 0.8, 60).WithKT(0.4)))

	s.Add(floor, mirror, shell, inner, left, right)

	s.AddLights(
		mustSpot(core.NewColor(1000, 600, 0), core.NewPoint3(-100, 100, 500), core.NewVec3(1, -1, -6)).
			WithAttenuation(1, 0.0004, 0.0000006).NarrowBeam(4),
		lights.NewPoint(core.NewColor(500, 300, 300), core.NewPoint3(100, 150, 200)).
			WithAttenuation(1, 0.0005, 0.0005),
		mustDirectional(core.NewColor(60, 60, 80), core.NewVec3(-1, -2, -1)),
	)

	return s
}
