package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// planeIntersect intersects a ray with the xz plane. Rays parallel to the
// plane, including rays lying in it, yield no intersection.
func planeIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// planeNormalAt returns the constant +y normal
func planeNormalAt(_ core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
