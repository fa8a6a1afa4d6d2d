// Package renderer maps pixels to primary rays and drives the per-pixel
// render loop over a worker pool.
package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates onto a virtual canvas one unit in front
// of the eye. Its transform places it in the world; the cached inverse
// carries rays back out.
type Camera struct {
	HSize int
	VSize int
	FOV   float64

	transform  core.Matrix4
	inverse    core.Matrix4
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for the given pixel dimensions and field of
// view (radians across the larger canvas dimension).
func NewCamera(hsize, vsize int, fov float64) *Camera {
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:      hsize,
		VSize:      vsize,
		FOV:        fov,
		transform:  core.Identity(),
		inverse:    core.Identity(),
		pixelSize:  (halfWidth * 2) / float64(hsize),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// SetTransform assigns the camera's placement, normally a ViewTransform.
// Fails with core.ErrNonInvertible for singular matrices.
func (c *Camera) SetTransform(t core.Matrix4) error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	c.transform = t
	c.inverse = inv
	return nil
}

// MustSetTransform is SetTransform for statically known-invertible
// transforms, panicking otherwise.
func (c *Camera) MustSetTransform(t core.Matrix4) *Camera {
	if err := c.SetTransform(t); err != nil {
		panic(err)
	}
	return c
}

// Transform returns the camera's placement transform
func (c *Camera) Transform() core.Matrix4 {
	return c.transform
}

// PixelSize returns the world-space size of a pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the primary ray through the center of the given
// pixel. Pure function of (camera, px, py).
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from canvas edge to the pixel center, in world units.
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The canvas sits at z=-1 in camera space, x increasing to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
