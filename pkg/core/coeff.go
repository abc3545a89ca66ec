package core

// Coeff is a per-channel coefficient used for material factors and path attenuation
type Coeff struct {
	R, G, B float64
}

// Coefficient constants
var (
	CoeffZero = Coeff{}
	CoeffOne  = Coeff{1, 1, 1}
)

// NewCoeff creates a coefficient with the same value on all channels
func NewCoeff(k float64) Coeff {
	return Coeff{k, k, k}
}

// NewCoeff3 creates a coefficient with separate channel values
func NewCoeff3(r, g, b float64) Coeff {
	return Coeff{r, g, b}
}

// Add returns the channel-wise sum
func (k Coeff) Add(other Coeff) Coeff {
	return Coeff{k.R + other.R, k.G + other.G, k.B + other.B}
}

// Product returns the channel-wise product
func (k Coeff) Product(other Coeff) Coeff {
	return Coeff{k.R * other.R, k.G * other.G, k.B * other.B}
}

// Scale multiplies every channel by s
func (k Coeff) Scale(s float64) Coeff {
	return Coeff{k.R * s, k.G * s, k.B * s}
}

// LowerThan reports whether every channel is below limit
func (k Coeff) LowerThan(limit float64) bool {
	return k.R < limit && k.G < limit && k.B < limit
}

// IsZero reports whether every channel is zero
func (k Coeff) IsZero() bool {
	return IsZero(k.R) && IsZero(k.G) && IsZero(k.B)
}
