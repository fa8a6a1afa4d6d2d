package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// sphereIntersect solves the quadratic for a unit sphere at the origin.
// Both roots are returned in ascending order, negatives included; a
// tangent ray yields a repeated root.
func sphereIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// sphereNormalAt returns the local normal, the vector from the origin to
// the point.
func sphereNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
