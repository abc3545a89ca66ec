package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Point is an omnidirectional light at a position with distance attenuation
// I₀ / (kC + kL·d + kQ·d²)
type Point struct {
	intensity core.Color
	position  core.Point3
	kC        float64
	kL        float64
	kQ        float64
}

// NewPoint creates a point light with no attenuation (kC=1, kL=kQ=0)
func NewPoint(intensity core.Color, position core.Point3) *Point {
	return &Point{intensity: intensity, position: position, kC: 1}
}

// WithAttenuation returns a copy using the given constant, linear and quadratic factors
func (p *Point) WithAttenuation(kC, kL, kQ float64) *Point {
	c := *p
	c.kC, c.kL, c.kQ = kC, kL, kQ
	return &c
}

// Position returns the light's location
func (p *Point) Position() core.Point3 {
	return p.position
}

// Intensity returns the attenuated intensity at point
func (p *Point) Intensity(point core.Point3) core.Color {
	return p.intensity.Scale(1 / p.attenuation(point))
}

func (p *Point) attenuation(point core.Point3) float64 {
	d := point.Distance(p.position)
	return p.kC + p.kL*d + p.kQ*d*d
}

// Direction returns the unit vector from the light to point. A point at the
// light's position has no direction and yields the zero vector.
func (p *Point) Direction(point core.Point3) core.Vec3 {
	dir, err := point.Subtract(p.position).TryNormalize()
	if err != nil {
		return core.Vec3{}
	}
	return dir
}

// Distance returns the distance from point to the light
func (p *Point) Distance(point core.Point3) float64 {
	return point.Distance(p.position)
}
