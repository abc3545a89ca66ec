package material

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Material holds the Phong and transport coefficients of a surface.
// It is a value: the With* methods return modified copies and never touch the receiver.
type Material struct {
	KD        core.Coeff // Diffuse reflectance
	KS        core.Coeff // Specular reflectance
	KT        core.Coeff // Transparency
	KR        core.Coeff // Mirror reflectivity
	Shininess int        // Specular exponent
}

// New returns a black, opaque, non-reflective material
func New() Material {
	return Material{}
}

// WithKD returns a copy with the diffuse coefficient set on all channels
func (m Material) WithKD(k float64) Material {
	m.KD = core.NewCoeff(k)
	return m
}

// WithKD3 returns a copy with a per-channel diffuse coefficient
func (m Material) WithKD3(k core.Coeff) Material {
	m.KD = k
	return m
}

// WithKS returns a copy with the specular coefficient set on all channels
func (m Material) WithKS(k float64) Material {
	m.KS = core.NewCoeff(k)
	return m
}

// WithKS3 returns a copy with a per-channel specular coefficient
func (m Material) WithKS3(k core.Coeff) Material {
	m.KS = k
	return m
}

// WithKT returns a copy with the transparency set on all channels
func (m Material) WithKT(k float64) Material {
	m.KT = core.NewCoeff(k)
	return m
}

// WithKT3 returns a copy with a per-channel transparency
func (m Material) WithKT3(k core.Coeff) Material {
	m.KT = k
	return m
}

// WithKR returns a copy with the reflectivity set on all channels
func (m Material) WithKR(k float64) Material {
	m.KR = core.NewCoeff(k)
	return m
}

// WithKR3 returns a copy with a per-channel reflectivity
func (m Material) WithKR3(k core.Coeff) Material {
	m.KR = k
	return m
}

// WithShininess returns a copy with the specular exponent set
func (m Material) WithShininess(n int) Material {
	m.Shininess = n
	return m
}

// IsOpaque reports whether no light passes through the surface
func (m Material) IsOpaque() bool {
	return m.KT.IsZero()
}

// Matte is a plain diffuse surface
func Matte(kd float64) Material {
	return New().WithKD(kd)
}

// Plastic is a diffuse surface with a specular highlight
func Plastic(kd, ks float64, shininess int) Material {
	return New().WithKD(kd).WithKS(ks).WithShininess(shininess)
}

// Mirror is a fully reflective surface with a faint highlight
func Mirror(kr float64) Material {
	return New().WithKD(0.1).WithKS(0.4).WithShininess(300).WithKR(kr)
}

// Glass is a mostly transparent surface
func Glass(kt float64) Material {
	return New().WithKD(0.2).WithKS(0.2).WithShininess(30).WithKT(kt)
}
