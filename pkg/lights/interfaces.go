package lights

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Light is a source that illuminates surface points during local shading
type Light interface {
	// Intensity returns the light arriving at point before surface response
	Intensity(point core.Point3) core.Color

	// Direction returns the unit vector from the light towards point
	Direction(point core.Point3) core.Vec3

	// Distance returns how far the light is from point; +Inf for lights at infinity
	Distance(point core.Point3) float64
}

// infinity is the distance reported by lights with no position
var infinity = math.Inf(1)
