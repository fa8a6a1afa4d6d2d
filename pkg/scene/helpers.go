package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func sphere(m material.Material) *geometry.Object {
	o := geometry.NewSphere()
	o.Material = m
	return o
}

func geometryPlane(m material.Material) *geometry.Object {
	o := geometry.NewPlane()
	o.Material = m
	return o
}

func cubeObject(m material.Material) *geometry.Object {
	o := geometry.NewCube()
	o.Material = m
	return o
}

func cylinderObject(min, max float64, closed bool, m material.Material) *geometry.Object {
	o := geometry.NewCylinder(min, max, closed)
	o.Material = m
	return o
}

// mustPatternTransform panics on a singular matrix; scene transforms are
// statically known-invertible.
func mustPatternTransform(p *material.Pattern, t core.Matrix4) {
	if err := p.SetTransform(t); err != nil {
		panic(err)
	}
}
