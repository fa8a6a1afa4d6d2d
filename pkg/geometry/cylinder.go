package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// cylinderIntersect intersects a ray with a unit-radius cylinder about
// the y axis, truncated to the shape's (Min, Max) extent and optionally
// capped.
func cylinderIntersect(shape Shape, ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if a > core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if shape.Min < y && y < shape.Max {
				ts = append(ts, t)
			}
		}
	}

	ts = append(ts, capIntersections(shape, ray)...)
	return ts
}

// capIntersections checks the flat end caps of a closed cylinder
func capIntersections(shape Shape, ray core.Ray) []float64 {
	if !shape.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	var ts []float64
	for _, y := range []float64{shape.Min, shape.Max} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		if x*x+z*z <= 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// cylinderNormalAt distinguishes the caps from the barrel by checking the
// squared distance from the y axis.
func cylinderNormalAt(shape Shape, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= shape.Max-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= shape.Min+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
