package lights

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Directional is a light at infinity shining along one direction
type Directional struct {
	intensity core.Color
	direction core.Vec3
}

// NewDirectional creates a directional light; direction must be non-zero
func NewDirectional(intensity core.Color, direction core.Vec3) (*Directional, error) {
	dir, err := direction.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	return &Directional{intensity: intensity, direction: dir}, nil
}

// Intensity is the same everywhere
func (d *Directional) Intensity(core.Point3) core.Color {
	return d.intensity
}

// Direction is the same everywhere
func (d *Directional) Direction(core.Point3) core.Vec3 {
	return d.direction
}

// Distance is infinite
func (d *Directional) Distance(core.Point3) float64 {
	return infinity
}
