package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// The must helpers build scene literals. A construction error in a built-in
// scene is a programming error, so they panic.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustSphere(center core.Point3, radius float64, opts ...geometry.Option) *geometry.Sphere {
	return must(geometry.NewSphere(center, radius, opts...))
}

func mustPlane(point core.Point3, normal core.Vec3, opts ...geometry.Option) *geometry.Plane {
	return must(geometry.NewPlane(point, normal, opts...))
}

func mustTriangle(v0, v1, v2 core.Point3, opts ...geometry.Option) *geometry.Triangle {
	return must(geometry.NewTriangle(v0, v1, v2, opts...))
}

func mustPolygon(vertices []core.Point3, opts ...geometry.Option) *geometry.Polygon {
	return must(geometry.NewPolygon(vertices, opts...))
}

func mustTube(axis core.Ray, radius float64, opts ...geometry.Option) *geometry.Tube {
	return must(geometry.NewTube(axis, radius, opts...))
}

func mustCylinder(axis core.Ray, radius, height float64, opts ...geometry.Option) *geometry.Cylinder {
	return must(geometry.NewCylinder(axis, radius, height, opts...))
}

func mustSpot(intensity core.Color, position core.Point3, beam core.Vec3) *lights.Spot {
	return must(lights.NewSpot(intensity, position, beam))
}

func mustDirectional(intensity core.Color, direction core.Vec3) *lights.Directional {
	return must(lights.NewDirectional(intensity, direction))
}

// NewGroundQuad creates a horizontal square polygon centered at center,
// facing +Y. It is a bounded alternative to an infinite ground plane.
func NewGroundQuad(center core.Point3, size float64, opts ...geometry.Option) *geometry.Polygon {
	h := size / 2
	return mustPolygon([]core.Point3{
		core.NewPoint3(center.X-h, center.Y, center.Z-h),
		core.NewPoint3(center.X-h, center.Y, center.Z+h),
		core.NewPoint3(center.X+h, center.Y, center.Z+h),
		core.NewPoint3(center.X+h, center.Y, center.Z-h),
	}, opts...)
}
