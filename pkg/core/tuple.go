package core

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout
// the tracer. Geometry code also uses it to offset shadow and refraction
// ray origins off the surface they spawn from.
const Epsilon = 1e-5

// Tuple is a homogeneous 4-component coordinate. W=1 marks a point,
// W=0 marks a vector; the arithmetic below preserves that distinction
// (point-point is a vector, point+vector is a point, and so on).
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point tuple (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the vector reflected about the given normal:
// r = v - 2*dot(v,n)*n
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals compares two tuples component-wise with epsilon tolerance
func (t Tuple) Equals(other Tuple) bool {
	return floatEquals(t.X, other.X) &&
		floatEquals(t.Y, other.Y) &&
		floatEquals(t.Z, other.Z) &&
		floatEquals(t.W, other.W)
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
