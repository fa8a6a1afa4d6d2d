// Package scene builds the prebuilt demo scenes used by the CLI, the
// HTTP server and the preview window.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene pairs a fully constructed world with a camera placed for it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// builders maps scene names to constructors, keyed for CLI/server lookup
var builders = map[string]func(width, height int) *Scene{
	"default":  NewDefaultScene,
	"glass":    NewGlassScene,
	"patterns": NewPatternScene,
}

// Names returns the available scene names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene, or an error listing the valid names
func ByName(name string, width, height int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, Names())
	}
	return builder(width, height), nil
}

// NewDefaultScene is three spheres on a checkered reflective floor with
// a back wall, lit by a single light.
func NewDefaultScene(width, height int) *Scene {
	w := world.New()

	floorPattern := material.NewChecker(core.Grey(0.85), core.Grey(0.35))
	floorMat := material.Default().WithPattern(floorPattern)
	floorMat.Specular = 0
	floorMat.Reflectivity = 0.2
	floor := geometryPlane(floorMat)

	wallMat := material.Default().WithColor(core.NewColor(0.9, 0.9, 0.95))
	wallMat.Specular = 0
	backWall := geometryPlane(wallMat).MustSetTransform(
		core.Translation(0, 0, 6).Multiply(core.RotationX(math.Pi / 2)))

	middleMat := material.Default().WithColor(core.NewColor(0.1, 1, 0.5))
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflectivity = 0.1
	middle := sphere(middleMat).MustSetTransform(core.Translation(-0.5, 1, 0.5))

	rightMat := material.Default().WithColor(core.NewColor(0.5, 1, 0.1))
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right := sphere(rightMat).MustSetTransform(
		core.Translation(1.5, 0.5, -0.5).Multiply(core.UniformScaling(0.5)))

	leftMat := material.Default().WithColor(core.NewColor(1, 0.8, 0.1))
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left := sphere(leftMat).MustSetTransform(
		core.Translation(-1.5, 0.33, -0.75).Multiply(core.UniformScaling(0.33)))

	w.AddObject(floor, backWall, middle, right, left)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3).MustSetTransform(
		core.ViewTransform(
			core.NewPoint(0, 1.5, -5),
			core.NewPoint(0, 1, 0),
			core.NewVector(0, 1, 0),
		))

	return &Scene{World: w, Camera: camera}
}

// NewGlassScene exercises refraction end to end: a glass sphere with a
// hollow air pocket floating over a checkered plane.
func NewGlassScene(width, height int) *Scene {
	w := world.New()

	floorPattern := material.NewChecker(core.Grey(0.9), core.Grey(0.2))
	floorMat := material.Default().WithPattern(floorPattern)
	floorMat.Specular = 0
	floorMat.Reflectivity = 0.1
	floor := geometryPlane(floorMat)

	glassMat := material.Glass()
	glassMat.Diffuse = 0.1
	glassMat.Ambient = 0.05
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflectivity = 0.9
	glassMat.Pattern = material.NewSolid(core.Grey(0.05))
	outer := sphere(glassMat).MustSetTransform(core.Translation(0, 1.2, 0))

	airMat := material.Glass()
	airMat.RefractiveIndex = 1.0
	airMat.Diffuse = 0.1
	airMat.Ambient = 0.05
	airMat.Pattern = material.NewSolid(core.Black())
	inner := sphere(airMat).MustSetTransform(
		core.Translation(0, 1.2, 0).Multiply(core.UniformScaling(0.5)))
	// The air pocket must not darken the scene behind it.
	inner.CastsShadow = false

	metalMat := material.Default().WithColor(core.NewColor(0.8, 0.2, 0.2))
	metalMat.Reflectivity = 0.4
	ball := sphere(metalMat).MustSetTransform(
		core.Translation(2.2, 0.5, 1.5).Multiply(core.UniformScaling(0.5)))

	w.AddObject(floor, outer, inner, ball)
	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 9, -7), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3).MustSetTransform(
		core.ViewTransform(
			core.NewPoint(0, 1.8, -5),
			core.NewPoint(0, 1, 0),
			core.NewVector(0, 1, 0),
		))

	return &Scene{World: w, Camera: camera}
}

// NewPatternScene shows every pattern kind, including a blended
// composite, across cubes, cylinders and spheres.
func NewPatternScene(width, height int) *Scene {
	w := world.New()

	ringPattern := material.NewRing(core.NewColor(0.9, 0.6, 0.2), core.Grey(0.9))
	mustPatternTransform(&ringPattern, core.UniformScaling(0.5))
	stripePattern := material.NewStripe(core.NewColor(0.2, 0.4, 0.9), core.Grey(0.9))
	mustPatternTransform(&stripePattern, core.RotationY(math.Pi/4))
	blended := material.NewBlend(ringPattern, stripePattern)

	floorMat := material.Default().WithPattern(blended)
	floorMat.Specular = 0
	floor := geometryPlane(floorMat)

	gradientMat := material.Default().WithPattern(
		material.NewGradient(core.NewColor(1, 0.2, 0.2), core.NewColor(0.2, 0.2, 1)))
	gradSphere := sphere(gradientMat).MustSetTransform(
		core.Translation(-1.6, 1, 0.5).
			Multiply(core.RotationZ(math.Pi / 4)).
			Multiply(core.UniformScaling(1.0)))

	checkerPattern := material.NewChecker(core.Grey(0.95), core.NewColor(0.1, 0.5, 0.3))
	mustPatternTransform(&checkerPattern, core.UniformScaling(0.4))
	checkerMat := material.Default().WithPattern(checkerPattern)
	cube := cubeObject(checkerMat).MustSetTransform(
		core.Translation(1.8, 0.7, 1.2).
			Multiply(core.RotationY(math.Pi / 6)).
			Multiply(core.UniformScaling(0.7)))

	radialMat := material.Default().WithPattern(
		material.NewRadial(core.NewColor(0.9, 0.9, 0.2), core.NewColor(0.5, 0.1, 0.6)))
	cyl := cylinderObject(0, 1.4, true, radialMat).MustSetTransform(
		core.Translation(0.2, 0, -0.8).Multiply(core.Scaling(0.5, 1, 0.5)))

	w.AddObject(floor, gradSphere, cube, cyl)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 12, -10), core.White()))
	w.AddLight(lights.NewPointLight(core.NewPoint(8, 6, -8), core.Grey(0.3)))

	camera := renderer.NewCamera(width, height, math.Pi/3).MustSetTransform(
		core.ViewTransform(
			core.NewPoint(0, 2.5, -5),
			core.NewPoint(0, 0.8, 0),
			core.NewVector(0, 1, 0),
		))

	return &Scene{World: w, Camera: camera}
}
