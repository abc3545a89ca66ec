package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewCylinderScene creates capped cylinders standing on a ground quad, an
// infinite tube crossing the background and a glass column in front
func NewCylinderScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Location: core.NewPoint3(0, 30, 400),
		Forward:  core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Distance: 400,
		Width:    200,
		Height:   150,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("cylinders",
		WithCamera(cameraConfig),
		WithImageSize(800, 600),
		WithBackground(core.NewColor(30, 30, 40)),
		WithAmbient(lights.NewAmbient(core.NewColor(255, 255, 255), core.NewCoeff(0.04))),
	)

	up := core.NewVec3(0, 1, 0)
	s.Add(NewGroundQuad(core.NewPoint3(0, -40, -50), 400,
		geometry.WithEmission(core.NewColor(25, 25, 25)),
		geometry.WithMaterial(material.Plastic(0.4, 0.3, 40).WithKR(0.3))))

	colors := []core.Color{
		core.NewColor(120, 30, 30),
		core.NewColor(30, 120, 30),
		core.NewColor(30, 30, 120),
	}
	for i, c := range colors {
		x := float64(i-1) * 70
		s.Add(mustCylinder(core.NewRay(core.NewPoint3(x, -40, -80), up), 20, 40+float64(i)*25,
			geometry.WithEmission(c),
			geometry.WithMaterial(material.Plastic(0.5, 0.5, 80))))
	}

	s.Add(mustCylinder(core.NewRay(core.NewPoint3(0, -40, 20), up), 12, 50,
		geometry.WithEmission(core.NewColor(5, 10, 15)),
		geometry.WithMaterial(material.Glass(0.7))))

	s.Add(mustTube(core.NewRay(core.NewPoint3(0, 80, -250), core.NewVec3(1, 0.1, 0)), 15,
		geometry.WithEmission(core.NewColor(60, 40, 10)),
		geometry.WithMaterial(material.Mirror(0.5))))

	s.AddLights(
		lights.NewPoint(core.NewColor(600, 600, 500), core.NewPoint3(-150, 200, 150)).
			WithAttenuation(1, 0.001, 0.00001),
		mustSpot(core.NewColor(400, 300, 200), core.NewPoint3(150, 150, 100), core.NewVec3(-1, -1.2, -1.5)).
			WithAttenuation(1, 0.001, 0.00001).NarrowBeam(2),
	)

	return s
}
