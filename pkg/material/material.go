// Package material defines surface appearance: Phong parameters,
// procedural patterns, and the per-light lighting computation.
package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Material holds the Phong shading parameters for a surface plus the
// reflection/refraction weights used by the recursive shading engine.
// Ambient, diffuse and specular are independent weights; they are not
// required to sum to 1.
type Material struct {
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflectivity    float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         Pattern
}

// Default returns the standard material: matte white, opaque
func Default() Material {
	return Material{
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflectivity:    0,
		Transparency:    0,
		RefractiveIndex: 1,
		Pattern:         NewSolid(core.White()),
	}
}

// Glass returns a fully transparent material with the refractive index
// of glass.
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}

// WithColor returns the material with a solid color pattern
func (m Material) WithColor(c core.Color) Material {
	m.Pattern = NewSolid(c)
	return m
}

// WithPattern returns the material with the given pattern
func (m Material) WithPattern(p Pattern) Material {
	m.Pattern = p
	return m
}

// Lighting computes the Phong contribution of a single light at a surface
// point. objInverse is the inverse transform of the object being shaded,
// needed to evaluate the pattern in object space. When the point is in
// shadow the diffuse and specular terms are dropped; ambient always
// applies.
func Lighting(m Material, objInverse core.Matrix4, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	color := m.Pattern.PatternAtObject(objInverse, point)
	effective := color.MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normal)

	diffuse := core.Black()
	specular := core.Black()
	if lightDotNormal >= 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		reflectv := lightv.Negate().Reflect(normal)
		reflectDotEye := reflectv.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	if inShadow {
		return ambient
	}
	return ambient.Add(diffuse).Add(specular)
}
