package renderer

import (
	"math"
	"sync/atomic"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

const (
	// MaxColorLevel bounds the recursion depth of secondary rays
	MaxColorLevel = 10
	// MinColorK is the accumulated attenuation below which a branch stops contributing
	MinColorK = 0.001
)

// Scene interface to avoid circular imports
type Scene interface {
	GetGeometries() geometry.Intersectable
	GetLights() []lights.Light
	GetAmbient() lights.Ambient
	GetBackground() core.Color
	UseAcceleration() bool
}

// RayTracer shades rays with the Phong model plus recursive reflection and
// refraction. It only reads the scene and is safe for concurrent use.
type RayTracer struct {
	scene Scene
	rays  atomic.Int64
}

// NewRayTracer creates a ray tracer over a prepared scene
func NewRayTracer(scene Scene) *RayTracer {
	return &RayTracer{scene: scene}
}

// RaysTraced returns how many rays have been cast, shadow rays included
func (rt *RayTracer) RaysTraced() int64 {
	return rt.rays.Load()
}

// TraceRay returns the color seen along ray, or the background if it hits nothing
func (rt *RayTracer) TraceRay(ray core.Ray) core.Color {
	hit, ok := rt.findClosest(ray)
	if !ok {
		return rt.scene.GetBackground()
	}
	return rt.calcColor(hit, ray, MaxColorLevel, core.CoeffOne)
}

func (rt *RayTracer) findClosest(ray core.Ray) (geometry.Intersection, bool) {
	rt.rays.Add(1)
	hits := rt.scene.GetGeometries().FindIntersections(ray, math.Inf(1), rt.scene.UseAcceleration())
	return geometry.Closest(hits, ray.Origin)
}

// calcColor is the local color at hit plus, above the last level, reflected
// and refracted light. k is the attenuation accumulated along the path.
func (rt *RayTracer) calcColor(hit geometry.Intersection, ray core.Ray, level int, k core.Coeff) core.Color {
	color := rt.calcLocalEffects(hit, ray, k)
	if level == 1 {
		return color
	}
	return color.Add(rt.calcGlobalEffects(hit, ray, level, k))
}

func (rt *RayTracer) calcLocalEffects(hit geometry.Intersection, ray core.Ray, k core.Coeff) core.Color {
	color := hit.Geometry.Emission().Add(rt.scene.GetAmbient().Intensity())
	v := ray.Direction
	n := hit.Geometry.Normal(hit.Point)
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return color
	}

	mat := hit.Geometry.Material()
	for _, light := range rt.scene.GetLights() {
		l := light.Direction(hit.Point)
		nl := core.AlignZero(n.Dot(l))
		if !core.SameSign(nl, nv) {
			continue
		}

		ktr := rt.transparency(hit, light, l, n)
		if ktr.Product(k).LowerThan(MinColorK) {
			continue
		}

		intensity := light.Intensity(hit.Point).ScaleCoeff(ktr)
		color = color.Add(
			intensity.ScaleCoeff(diffuse(mat, nl)),
			intensity.ScaleCoeff(specular(mat, n, l, nl, v)),
		)
	}
	return color
}

// diffuse is the Lambert term kD·|n·l|
func diffuse(mat material.Material, nl float64) core.Coeff {
	return mat.KD.Scale(math.Abs(nl))
}

// specular is the Phong term kS·max(0, -v·r)^shininess, r the reflection of l about n
func specular(mat material.Material, n, l core.Vec3, nl float64, v core.Vec3) core.Coeff {
	r := l.Subtract(n.Multiply(2 * nl))
	minusVR := -core.AlignZero(v.Dot(r))
	if minusVR <= 0 {
		return core.CoeffZero
	}
	return mat.KS.Scale(math.Pow(minusVR, float64(mat.Shininess)))
}

// transparency is the product of kT over everything between hit and light.
// Opaque occluders drive it to zero.
func (rt *RayTracer) transparency(hit geometry.Intersection, light lights.Light, l, n core.Vec3) core.Coeff {
	shadowRay := core.NewOffsetRay(hit.Point, l.Negate(), n)
	rt.rays.Add(1)
	occluders := rt.scene.GetGeometries().FindIntersections(shadowRay, light.Distance(shadowRay.Origin), rt.scene.UseAcceleration())

	ktr := core.CoeffOne
	for _, o := range occluders {
		ktr = ktr.Product(o.Geometry.Material().KT)
		if ktr.LowerThan(MinColorK) {
			return core.CoeffZero
		}
	}
	return ktr
}

func (rt *RayTracer) calcGlobalEffects(hit geometry.Intersection, ray core.Ray, level int, k core.Coeff) core.Color {
	mat := hit.Geometry.Material()
	n := hit.Geometry.Normal(hit.Point)
	v := ray.Direction

	reflected := core.NewOffsetRay(hit.Point, v.Reflect(n), n)
	refracted := core.NewOffsetRay(hit.Point, v, n)

	return rt.calcGlobalEffect(reflected, level, k, mat.KR).
		Add(rt.calcGlobalEffect(refracted, level, k, mat.KT))
}

// calcGlobalEffect traces one secondary ray scaled by its coefficient kx
func (rt *RayTracer) calcGlobalEffect(ray core.Ray, level int, k, kx core.Coeff) core.Color {
	kkx := k.Product(kx)
	if kkx.LowerThan(MinColorK) {
		return core.Black
	}
	hit, ok := rt.findClosest(ray)
	if !ok {
		return rt.scene.GetBackground().ScaleCoeff(kx)
	}
	return rt.calcColor(hit, ray, level-1, kkx).ScaleCoeff(kx)
}
