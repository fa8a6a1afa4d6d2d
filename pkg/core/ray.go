package core

// Ray has an origin point and a direction vector. The direction is not
// required to be unit length; intersection t values are relative to it.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with the matrix applied to origin and
// direction. t parameters are invariant under this transformation.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
