package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PatternKind identifies a pattern variant
type PatternKind int

const (
	// PatternSolid is a single color everywhere
	PatternSolid PatternKind = iota
	// PatternStripe alternates colors by floor(x) parity
	PatternStripe
	// PatternGradient blends linearly between two colors along x
	PatternGradient
	// PatternRing alternates in concentric rings in the xz plane
	PatternRing
	// PatternChecker alternates by floor(x)+floor(y)+floor(z) parity
	PatternChecker
	// PatternRadial blends continuously with radial distance in the xz plane
	PatternRadial
	// PatternBlend averages the colors of its child patterns
	PatternBlend
)

// Pattern maps a surface point to a color. It is a recursive tagged tree:
// leaf kinds use the A/B colors, composite kinds hold an ordered list of
// children, and every node carries its own transform. Evaluation is pure;
// the same (pattern, object transform, point) always yields the same color.
type Pattern struct {
	Kind     PatternKind
	A, B     core.Color
	Children []Pattern

	transform core.Matrix4
	inverse   core.Matrix4
}

// NewSolid creates a pattern with a single color
func NewSolid(c core.Color) Pattern {
	return newPattern(PatternSolid, c, c)
}

// NewStripe creates a stripe pattern alternating between a and b along x
func NewStripe(a, b core.Color) Pattern {
	return newPattern(PatternStripe, a, b)
}

// NewGradient creates a linear gradient from a to b along x
func NewGradient(a, b core.Color) Pattern {
	return newPattern(PatternGradient, a, b)
}

// NewRing creates concentric rings of a and b in the xz plane
func NewRing(a, b core.Color) Pattern {
	return newPattern(PatternRing, a, b)
}

// NewChecker creates a 3D checker pattern of a and b
func NewChecker(a, b core.Color) Pattern {
	return newPattern(PatternChecker, a, b)
}

// NewRadial creates a radial gradient from a to b in the xz plane
func NewRadial(a, b core.Color) Pattern {
	return newPattern(PatternRadial, a, b)
}

// NewBlend creates a composite pattern averaging its children. Each child
// is evaluated in its own local space, so nesting is plain recursive data.
func NewBlend(children ...Pattern) Pattern {
	p := newPattern(PatternBlend, core.Black(), core.Black())
	p.Children = children
	return p
}

func newPattern(kind PatternKind, a, b core.Color) Pattern {
	return Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// SetTransform assigns the pattern's local transform. Fails with
// core.ErrNonInvertible for singular matrices.
func (p *Pattern) SetTransform(t core.Matrix4) error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	p.transform = t
	p.inverse = inv
	return nil
}

// Transform returns the pattern's local transform
func (p Pattern) Transform() core.Matrix4 {
	return p.transform
}

// PatternAtObject evaluates the pattern for a world-space point on an
// object. The point travels world -> object local (via the object's
// inverse transform) -> pattern local (via the pattern's own inverse)
// before the color function runs.
func (p Pattern) PatternAtObject(objInverse core.Matrix4, worldPoint core.Tuple) core.Color {
	objectPoint := objInverse.MultiplyTuple(worldPoint)
	return p.patternAt(objectPoint)
}

func (p Pattern) patternAt(objectPoint core.Tuple) core.Color {
	point := p.inverse.MultiplyTuple(objectPoint)

	switch p.Kind {
	case PatternSolid:
		return p.A
	case PatternStripe:
		if mod2(math.Floor(point.X)) == 0 {
			return p.A
		}
		return p.B
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case PatternRing:
		if mod2(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z))) == 0 {
			return p.A
		}
		return p.B
	case PatternChecker:
		if mod2(math.Floor(point.X)+math.Floor(point.Y)+math.Floor(point.Z)) == 0 {
			return p.A
		}
		return p.B
	case PatternRadial:
		distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
		fraction := distance - math.Floor(distance)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case PatternBlend:
		if len(p.Children) == 0 {
			return core.Black()
		}
		sum := core.Black()
		for _, child := range p.Children {
			sum = sum.Add(child.patternAt(point))
		}
		return sum.Multiply(1.0 / float64(len(p.Children)))
	}
	return core.Black()
}

// mod2 is a floored modulus so negative coordinates keep alternating
// with the same period as positive ones.
func mod2(n float64) float64 {
	m := math.Mod(n, 2)
	if m < 0 {
		m += 2
	}
	return m
}
