package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Ambient is a constant fill light added to every hit
type Ambient struct {
	intensity core.Color
}

// NewAmbient creates an ambient light of intensity ia scaled by the ambient factor ka
func NewAmbient(ia core.Color, ka core.Coeff) Ambient {
	return Ambient{intensity: ia.ScaleCoeff(ka)}
}

// NoAmbient returns an ambient light that contributes nothing
func NoAmbient() Ambient {
	return Ambient{intensity: core.Black}
}

// Intensity returns the constant ambient intensity
func (a Ambient) Intensity() core.Color {
	return a.intensity
}
