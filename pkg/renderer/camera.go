package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrInvalidCamera is returned by Build for any unusable camera configuration
var ErrInvalidCamera = errors.New("invalid camera")

// ErrNotOrthogonal is returned when the forward and up vectors are not perpendicular
var ErrNotOrthogonal = fmt.Errorf("%w: forward and up vectors must be orthogonal", ErrInvalidCamera)

// orthogonalityTolerance bounds |forward·up| after normalization
const orthogonalityTolerance = 1e-10

// CameraConfig contains camera configuration
type CameraConfig struct {
	Location      core.Point3 // Eye position
	Forward       core.Vec3   // Viewing direction
	Up            core.Vec3   // Up direction, orthogonal to Forward
	Distance      float64     // Eye to view plane distance
	Width         float64     // View plane width in scene units
	Height        float64     // View plane height in scene units
	AASamples     int         // Rays per pixel for anti-aliasing (1 = off)
	Aperture      float64     // Lens radius for depth of field (0 = pinhole)
	FocalDistance float64     // Distance along Forward to the plane in focus
	DOFSamples    int         // Lens rays per primary ray when Aperture > 0
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Location:   core.Origin,
		Forward:    core.NewVec3(0, 0, -1),
		Up:         core.NewVec3(0, 1, 0),
		Distance:   100,
		Width:      200,
		Height:     200,
		AASamples:  1,
		DOFSamples: 1,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Location != core.Origin {
		result.Location = override.Location
	}
	if !override.Forward.IsZero() {
		result.Forward = override.Forward
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.Distance != 0 {
		result.Distance = override.Distance
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.AASamples != 0 {
		result.AASamples = override.AASamples
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocalDistance != 0 {
		result.FocalDistance = override.FocalDistance
	}
	if override.DOFSamples != 0 {
		result.DOFSamples = override.DOFSamples
	}
	return result
}

// CameraBuilder assembles a camera configuration. Every With method returns
// a modified copy, so a builder can be shared as a template.
type CameraBuilder struct {
	config CameraConfig
}

// NewCameraBuilder starts from DefaultCameraConfig
func NewCameraBuilder() CameraBuilder {
	return CameraBuilder{config: DefaultCameraConfig()}
}

// NewCameraBuilderFromConfig starts from an existing configuration
func NewCameraBuilderFromConfig(config CameraConfig) CameraBuilder {
	return CameraBuilder{config: config}
}

func (b CameraBuilder) WithLocation(location core.Point3) CameraBuilder {
	b.config.Location = location
	return b
}

func (b CameraBuilder) WithDirection(forward, up core.Vec3) CameraBuilder {
	b.config.Forward, b.config.Up = forward, up
	return b
}

func (b CameraBuilder) WithViewPlaneDistance(distance float64) CameraBuilder {
	b.config.Distance = distance
	return b
}

func (b CameraBuilder) WithViewPlaneSize(width, height float64) CameraBuilder {
	b.config.Width, b.config.Height = width, height
	return b
}

// WithAntiAliasing sets the number of jittered rays per pixel
func (b CameraBuilder) WithAntiAliasing(samples int) CameraBuilder {
	b.config.AASamples = samples
	return b
}

// WithDepthOfField enables a thin lens of the given radius focused at focalDistance
func (b CameraBuilder) WithDepthOfField(aperture, focalDistance float64, samples int) CameraBuilder {
	b.config.Aperture = aperture
	b.config.FocalDistance = focalDistance
	b.config.DOFSamples = samples
	return b
}

// Config returns the configuration built so far
func (b CameraBuilder) Config() CameraConfig {
	return b.config
}

// Build validates the configuration and returns an immutable camera
func (b CameraBuilder) Build() (*Camera, error) {
	c := b.config

	forward, err := c.Forward.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: forward: %w", ErrInvalidCamera, err)
	}
	up, err := c.Up.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up: %w", ErrInvalidCamera, err)
	}
	if math.Abs(forward.Dot(up)) > orthogonalityTolerance {
		return nil, ErrNotOrthogonal
	}
	if c.Distance <= 0 {
		return nil, fmt.Errorf("%w: view plane distance %f", ErrInvalidCamera, c.Distance)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("%w: view plane size %fx%f", ErrInvalidCamera, c.Width, c.Height)
	}
	if c.AASamples < 0 {
		return nil, fmt.Errorf("%w: anti-aliasing samples %d", ErrInvalidCamera, c.AASamples)
	}
	if c.Aperture < 0 {
		return nil, fmt.Errorf("%w: aperture %f", ErrInvalidCamera, c.Aperture)
	}
	if c.Aperture > 0 {
		if c.FocalDistance <= 0 {
			return nil, fmt.Errorf("%w: focal distance %f", ErrInvalidCamera, c.FocalDistance)
		}
		if c.DOFSamples < 1 {
			return nil, fmt.Errorf("%w: depth of field samples %d", ErrInvalidCamera, c.DOFSamples)
		}
	}

	return &Camera{
		location:      c.Location,
		forward:       forward,
		up:            up,
		right:         forward.Cross(up).Normalize(),
		distance:      c.Distance,
		width:         c.Width,
		height:        c.Height,
		aaSamples:     max(1, c.AASamples),
		aperture:      c.Aperture,
		focalDistance: c.FocalDistance,
		dofSamples:    max(1, c.DOFSamples),
	}, nil
}

// Camera generates primary rays through a view plane. It is immutable and
// safe for concurrent use.
type Camera struct {
	location      core.Point3
	forward       core.Vec3
	up            core.Vec3
	right         core.Vec3
	distance      float64
	width         float64
	height        float64
	aaSamples     int
	aperture      float64
	focalDistance float64
	dofSamples    int
}

// Location returns the eye position
func (c *Camera) Location() core.Point3 {
	return c.location
}

// Basis returns the camera's unit forward, up and right vectors
func (c *Camera) Basis() (forward, up, right core.Vec3) {
	return c.forward, c.up, c.right
}

// SamplesPerPixel returns how many rays PixelRays produces for each pixel
func (c *Camera) SamplesPerPixel() int {
	if c.depthOfField() {
		return c.aaRays() * c.dofSamples
	}
	return c.aaRays()
}

// aaRays is the stratified sample count, rounded up to a square grid
func (c *Camera) aaRays() int {
	if c.aaSamples <= 1 {
		return 1
	}
	side := int(math.Ceil(math.Sqrt(float64(c.aaSamples))))
	return side * side
}

func (c *Camera) depthOfField() bool {
	return c.aperture > 0
}

// ConstructRay returns the ray from the eye through the center of pixel (j, i)
// of an nX by nY grid. Column j grows along right, row i grows against up.
func (c *Camera) ConstructRay(nX, nY, j, i int) core.Ray {
	return core.NewRay(c.location, c.viewPlanePoint(nX, nY, float64(j)+0.5, float64(i)+0.5).Subtract(c.location))
}

// viewPlanePoint maps fractional pixel coordinates onto the view plane
func (c *Camera) viewPlanePoint(nX, nY int, x, y float64) core.Point3 {
	center := c.location.Add(c.forward.Multiply(c.distance))
	rX := c.width / float64(nX)
	rY := c.height / float64(nY)

	xJ := (x - float64(nX)/2) * rX
	yI := -(y - float64(nY)/2) * rY

	p := center
	if !core.IsZero(xJ) {
		p = p.Add(c.right.Multiply(xJ))
	}
	if !core.IsZero(yI) {
		p = p.Add(c.up.Multiply(yI))
	}
	return p
}

// PixelRays returns every ray that contributes to pixel (j, i): one per
// stratified anti-aliasing cell, each expanded into lens samples when depth of
// field is enabled. With both off it returns the single center ray.
func (c *Camera) PixelRays(nX, nY, j, i int, sampler core.Sampler) []core.Ray {
	var primary []core.Ray
	if c.aaSamples <= 1 {
		primary = []core.Ray{c.ConstructRay(nX, nY, j, i)}
	} else {
		offsets := core.StratifiedSamples(c.aaSamples, sampler)
		primary = make([]core.Ray, len(offsets))
		for k, o := range offsets {
			target := c.viewPlanePoint(nX, nY, float64(j)+o.X, float64(i)+o.Y)
			primary[k] = core.NewRay(c.location, target.Subtract(c.location))
		}
	}

	if !c.depthOfField() {
		return primary
	}

	rays := make([]core.Ray, 0, len(primary)*c.dofSamples)
	for _, ray := range primary {
		rays = append(rays, c.lensRays(ray, sampler)...)
	}
	return rays
}

// lensRays replaces a pinhole ray by rays from random points on the aperture
// disk, all converging where the pinhole ray meets the focal plane
func (c *Camera) lensRays(ray core.Ray, sampler core.Sampler) []core.Ray {
	focalPoint := ray.PointAt(c.focalDistance / ray.Direction.Dot(c.forward))

	rays := make([]core.Ray, 0, c.dofSamples)
	for len(rays) < c.dofSamples {
		disk := core.SamplePointInUnitDisk(sampler.Get2D())
		offset := c.right.Multiply(disk.X * c.aperture).Add(c.up.Multiply(disk.Y * c.aperture))
		lens := c.location.Add(offset)

		direction := focalPoint.Subtract(lens)
		if direction.IsZero() {
			continue
		}
		rays = append(rays, core.NewRay(lens, direction))
	}
	return rays
}
