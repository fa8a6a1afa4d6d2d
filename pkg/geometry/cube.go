package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// cubeIntersect runs the slab test against the unit cube. Division by a
// zero direction component yields infinities, which order correctly.
func cubeIntersect(ray core.Ray) []float64 {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

func checkAxis(origin, direction float64) (float64, float64) {
	tMin := (-1 - origin) / direction
	tMax := (1 - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// cubeNormalAt picks the face whose coordinate has the largest absolute
// value.
func cubeNormalAt(point core.Tuple) core.Tuple {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))
	switch maxc {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	}
	return core.NewVector(0, 0, point.Z)
}
