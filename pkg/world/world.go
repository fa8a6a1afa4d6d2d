// Package world holds the scene being traced and the recursive shading
// engine that computes the color visible along a ray.
package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DefaultMaxDepth bounds the reflection/refraction recursion. The depth
// counter is threaded explicitly through every call; once it reaches zero
// secondary contributions are black, which is the sole termination
// guarantee against infinite bounce chains.
const DefaultMaxDepth = 5

// World is the set of objects and lights forming the scene. It is
// read-only for the duration of a render, so independent pixels can be
// traced concurrently without synchronization.
type World struct {
	Objects    []*geometry.Object
	Lights     []lights.PointLight
	Background core.Color
}

// New creates an empty world with a black background
func New() *World {
	return &World{}
}

// Default returns the two-sphere, one-light fixture world used across
// the shading tests.
func Default() *World {
	m := material.Default().WithColor(core.NewColor(0.8, 1.0, 0.6))
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer := geometry.NewSphere()
	outer.Material = m

	inner := geometry.NewSphere().MustSetTransform(core.UniformScaling(0.5))

	return &World{
		Objects: []*geometry.Object{outer, inner},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()),
		},
	}
}

// AddObject appends an object to the world
func (w *World) AddObject(objects ...*geometry.Object) {
	w.Objects = append(w.Objects, objects...)
}

// AddLight appends a light to the world
func (w *World) AddLight(light lights.PointLight) {
	w.Lights = append(w.Lights, light)
}

// Intersect queries every object and returns the combined intersections
// sorted ascending by t.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	return geometry.NewIntersections(xs...)
}

// IsShadowed reports whether the point is occluded from the light. The
// caller passes an over-point already offset along the surface normal.
// Objects with the shadow flag cleared never occlude.
func (w *World) IsShadowed(lightPos, point core.Tuple) bool {
	toLight := lightPos.Subtract(point)
	distance := toLight.Magnitude()
	ray := core.NewRay(point, toLight.Normalize())

	for _, x := range w.Intersect(ray) {
		if x.T < 0 {
			continue
		}
		if x.T >= distance {
			break
		}
		if x.Object.CastsShadow {
			return true
		}
	}
	return false
}

// ShadeHit computes the color at a precomputed hit: the summed Phong
// contribution of every light, plus the weighted reflected and refracted
// colors. No clamping happens here; that is an image-export concern.
func (w *World) ShadeHit(comps geometry.Comps, remaining int) core.Color {
	surface := core.Black()
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(light.Position, comps.OverPoint)
		surface = surface.Add(material.Lighting(
			comps.Object.Material,
			comps.Object.InverseTransform(),
			light,
			comps.OverPoint,
			comps.Eye,
			comps.Normal,
			inShadow,
		))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror reflection of the incident ray,
// weighted by the material's reflectivity. Exhausted depth or a
// non-reflective surface contribute black.
func (w *World) ReflectedColor(comps geometry.Comps, remaining int) core.Color {
	if remaining <= 0 || comps.Object.Material.Reflectivity == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(comps.Object.Material.Reflectivity)
}

// RefractedColor traces the ray transmitted through a transparent
// surface, weighted by the material's transparency. Snell's law gives the
// refracted direction; total internal reflection contributes black.
func (w *World) RefractedColor(comps geometry.Comps, remaining int) core.Color {
	if remaining <= 0 || comps.Object.Material.Transparency == 0 {
		return core.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Multiply(comps.Object.Material.Transparency)
}

// ColorAt intersects the ray against the world and shades the hit, or
// returns the background color when nothing is struck. remaining bounds
// the recursive reflection/refraction depth.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	idx := xs.HitIndex()
	if idx < 0 {
		return w.Background
	}

	comps := xs.PrepareComputations(idx, ray)
	return w.ShadeHit(comps, remaining)
}
