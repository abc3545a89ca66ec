package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewTransparencyScene creates two reflective triangles behind a transparent
// sphere, lit by a narrow spot so the sphere casts a soft tinted shadow
func NewTransparencyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Location: core.NewPoint3(0, 0, 1000),
		Forward:  core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Distance: 1000,
		Width:    200,
		Height:   200,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("transparency",
		WithCamera(cameraConfig),
		WithAmbient(lights.NewAmbient(core.NewColor(255, 255, 255), core.NewCoeff(0.15))),
	)

	triangleMaterial := material.New().WithKS(0.8).WithShininess(60)
	s.Add(
		mustTriangle(core.NewPoint3(-150, -150, -115), core.NewPoint3(150, -150, -135), core.NewPoint3(75, 75, -150),
			geometry.WithMaterial(triangleMaterial)),
		mustTriangle(core.NewPoint3(-150, -150, -115), core.NewPoint3(-70, 70, -140), core.NewPoint3(75, 75, -150),
			geometry.WithMaterial(triangleMaterial)),
		mustSphere(core.NewPoint3(60, 50, -50), 30,
			geometry.WithEmission(core.NewColor(0, 0, 255)),
			geometry.WithMaterial(material.New().WithKD(0.2).WithKS(0.2).WithShininess(30).WithKT(0.6))),
	)

	s.AddLights(
		mustSpot(core.NewColor(700, 400, 400), core.NewPoint3(60, 50, 0), core.NewVec3(0, 0, -1)).
			WithAttenuation(1, 4e-5, 2e-7).NarrowBeam(10),
	)

	return s
}
