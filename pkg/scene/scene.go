package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Geometries   *geometry.Geometries // Objects in the scene
	Lights       []lights.Light       // Lights in the scene
	Ambient      lights.Ambient       // Fill light added to every hit
	Background   core.Color           // Color of rays that hit nothing
	Accelerate   bool                 // Build and use the BVH
	CameraConfig renderer.CameraConfig
	Width        int // Default image width in pixels
	Height       int // Default image height in pixels
}

// Option configures a scene under construction
type Option func(*Scene)

// WithBackground sets the color of rays that hit nothing
func WithBackground(c core.Color) Option {
	return func(s *Scene) { s.Background = c }
}

// WithAmbient sets the ambient light
func WithAmbient(a lights.Ambient) Option {
	return func(s *Scene) { s.Ambient = a }
}

// WithAcceleration turns the BVH on or off
func WithAcceleration(on bool) Option {
	return func(s *Scene) { s.Accelerate = on }
}

// WithCamera merges config over the default camera configuration
func WithCamera(config renderer.CameraConfig) Option {
	return func(s *Scene) { s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, config) }
}

// WithImageSize sets the default output resolution
func WithImageSize(width, height int) Option {
	return func(s *Scene) { s.Width, s.Height = width, height }
}

// New creates an empty scene: black background, no ambient light,
// acceleration on and the default camera
func New(name string, opts ...Option) *Scene {
	s := &Scene{
		Name:         name,
		Geometries:   geometry.NewGeometries(),
		Ambient:      lights.NoAmbient(),
		Background:   core.Black,
		Accelerate:   true,
		CameraConfig: renderer.DefaultCameraConfig(),
		Width:        500,
		Height:       500,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends geometry to the scene
func (s *Scene) Add(entries ...geometry.Intersectable) {
	s.Geometries.Add(entries...)
}

// AddLights appends lights to the scene
func (s *Scene) AddLights(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Prepare builds the BVH when acceleration is on. It must run before
// rendering and not concurrently with it.
func (s *Scene) Prepare() {
	if s.Accelerate {
		s.Geometries.Build()
	} else {
		s.Geometries.Flatten()
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Geometries.Len()
}

// BVHStats returns statistics about the scene's hierarchy
func (s *Scene) BVHStats() geometry.BVHStats {
	return s.Geometries.Stats()
}

// NewCameraBuilder returns a builder seeded with the scene's camera configuration
func (s *Scene) NewCameraBuilder() renderer.CameraBuilder {
	return renderer.NewCameraBuilderFromConfig(s.CameraConfig)
}

func (s *Scene) GetGeometries() geometry.Intersectable { return s.Geometries }
func (s *Scene) GetLights() []lights.Light             { return s.Lights }
func (s *Scene) GetAmbient() lights.Ambient            { return s.Ambient }
func (s *Scene) GetBackground() core.Color             { return s.Background }
func (s *Scene) UseAcceleration() bool                 { return s.Accelerate }
