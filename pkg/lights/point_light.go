// Package lights provides the light sources the shading engine samples.
package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light with no size, radiating equally in all directions.
// Multiple lights are independent; their contributions sum.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
