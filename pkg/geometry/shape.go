// Package geometry defines the primitive shapes, the Object wrapper that
// places a shape in the world, and the intersection machinery.
package geometry

// Kind identifies a primitive shape. Shapes form a closed set so the
// intersect/normal dispatch can be an exhaustive switch.
type Kind int

const (
	// KindSphere is a unit sphere centered at the origin
	KindSphere Kind = iota
	// KindPlane is the xz plane with normal +y
	KindPlane
	// KindCube is an axis-aligned cube from (-1,-1,-1) to (1,1,1)
	KindCube
	// KindCylinder is a unit-radius cylinder about the y axis
	KindCylinder
)

// Shape is a primitive in its own local space. Min, Max and Closed only
// apply to cylinders: the y extent (exclusive) and whether the ends are
// capped.
type Shape struct {
	Kind   Kind
	Min    float64
	Max    float64
	Closed bool
}
