package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection pairs a ray parameter with the object it struck
type Intersection struct {
	T      float64
	Object *Object
}

// Intersections is an ordered collection of intersections, ascending by T.
// Negative T values are kept; hit selection filters them.
type Intersections []Intersection

// NewIntersections sorts the given intersections ascending by T
func NewIntersections(xs ...Intersection) Intersections {
	sorted := Intersections(xs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return sorted
}

// Merge combines two sorted intersection sets into one sorted set
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	return NewIntersections(merged...)
}

// Hit returns the intersection with the smallest non-negative T. A plane
// can produce intersections that are all behind the ray, so a non-empty
// set does not imply a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	idx := xs.HitIndex()
	if idx < 0 {
		return Intersection{}, false
	}
	return xs[idx], true
}

// HitIndex returns the index of the hit, or -1 when every T is negative.
// The index is needed to precompute refraction indices, which walk the
// whole set up to the hit.
func (xs Intersections) HitIndex() int {
	for i, x := range xs {
		if x.T >= 0 {
			return i
		}
	}
	return -1
}

// Comps is the precomputed state of a hit, shared by the shading,
// shadow, reflection and refraction calculations.
type Comps struct {
	T      float64
	Object *Object
	Point  core.Tuple
	// OverPoint sits just above the surface along the normal; shadow and
	// reflection rays start here to avoid self-intersection acne.
	OverPoint core.Tuple
	// UnderPoint sits just below the surface; refracted rays start here.
	UnderPoint core.Tuple
	Eye        core.Tuple
	Normal     core.Tuple
	Reflect    core.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices of the materials the ray is
	// leaving and entering.
	N1, N2 float64
}

// PrepareComputations precomputes the hit state for the intersection at
// the given index. The full sorted set is required to derive N1/N2: the
// walk tracks which objects currently contain the ray.
func (xs Intersections) PrepareComputations(index int, ray core.Ray) Comps {
	hit := xs[index]
	n1, n2 := xs.refractiveIndices(index)

	point := ray.Position(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Object.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	offset := normal.Multiply(core.Epsilon)
	return Comps{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		Eye:        eye,
		Normal:     normal,
		Reflect:    ray.Direction.Reflect(normal),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks the sorted set maintaining the stack of objects
// the ray is inside of. N1 is the index of the material being exited at
// the hit, N2 the one being entered; open air is 1.
func (xs Intersections) refractiveIndices(index int) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []*Object

	for i, x := range xs {
		if i == index {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		found := -1
		for j, obj := range containers {
			if obj == x.Object {
				found = j
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if i == index {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}
