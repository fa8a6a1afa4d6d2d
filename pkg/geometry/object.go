package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object is a primitive instance placed in the world: a shape plus its
// transform, material and shadow-casting flag. Objects are identified by
// pointer; the world owns them and never copies them during a render.
type Object struct {
	Shape       Shape
	Material    material.Material
	CastsShadow bool

	transform        core.Matrix4
	inverse          core.Matrix4
	inverseTranspose core.Matrix4
}

// NewSphere creates a unit sphere at the origin with the default material
func NewSphere() *Object {
	return newObject(Shape{Kind: KindSphere})
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Object {
	o := newObject(Shape{Kind: KindSphere})
	o.Material = material.Glass()
	return o
}

// NewPlane creates the xz plane with the default material
func NewPlane() *Object {
	return newObject(Shape{Kind: KindPlane})
}

// NewCube creates a unit cube with the default material
func NewCube() *Object {
	return newObject(Shape{Kind: KindCube})
}

// NewCylinder creates a y-axis cylinder truncated to (min, max),
// optionally capped.
func NewCylinder(min, max float64, closed bool) *Object {
	return newObject(Shape{Kind: KindCylinder, Min: min, Max: max, Closed: closed})
}

// NewInfiniteCylinder creates an unbounded open cylinder about the y axis
func NewInfiniteCylinder() *Object {
	return NewCylinder(math.Inf(-1), math.Inf(1), false)
}

func newObject(shape Shape) *Object {
	return &Object{
		Shape:            shape,
		Material:         material.Default(),
		CastsShadow:      true,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
	}
}

// SetTransform assigns the object's transform, caching its inverse and
// inverse-transpose. Fails with core.ErrNonInvertible for singular
// matrices; validation happens here, before a render begins.
func (o *Object) SetTransform(t core.Matrix4) error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	o.transform = t
	o.inverse = inv
	o.inverseTranspose = inv.Transpose()
	return nil
}

// MustSetTransform is SetTransform for statically known-invertible
// transforms, panicking otherwise. It returns the object for chaining
// during scene construction.
func (o *Object) MustSetTransform(t core.Matrix4) *Object {
	if err := o.SetTransform(t); err != nil {
		panic(err)
	}
	return o
}

// Transform returns the object's transform
func (o *Object) Transform() core.Matrix4 {
	return o.transform
}

// InverseTransform returns the cached inverse of the object's transform
func (o *Object) InverseTransform() core.Matrix4 {
	return o.inverse
}

// Intersect converts the world-space ray into the object's local space
// and dispatches to the shape's intersection test. t values are invariant
// under the affine ray transform, so they come back unchanged.
func (o *Object) Intersect(ray core.Ray) Intersections {
	localRay := ray.Transform(o.inverse)

	var ts []float64
	switch o.Shape.Kind {
	case KindSphere:
		ts = sphereIntersect(localRay)
	case KindPlane:
		ts = planeIntersect(localRay)
	case KindCube:
		ts = cubeIntersect(localRay)
	case KindCylinder:
		ts = cylinderIntersect(o.Shape, localRay)
	}

	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: o})
	}
	return NewIntersections(xs...)
}

// NormalAt returns the world-space surface normal at a world-space point.
// Normals transform by the inverse-transpose of the object's transform
// (they do not transform like points under non-uniform scaling), then get
// renormalized.
func (o *Object) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := o.inverse.MultiplyTuple(worldPoint)

	var localNormal core.Tuple
	switch o.Shape.Kind {
	case KindSphere:
		localNormal = sphereNormalAt(localPoint)
	case KindPlane:
		localNormal = planeNormalAt(localPoint)
	case KindCube:
		localNormal = cubeNormalAt(localPoint)
	case KindCylinder:
		localNormal = cylinderNormalAt(o.Shape, localPoint)
	}

	worldNormal := o.inverseTranspose.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
