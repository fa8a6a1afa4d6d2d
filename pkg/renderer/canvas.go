package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a rectangular buffer of unclamped colors. Clamping to a
// displayable range happens only on export.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Out-of-bounds writes are ignored.
func (c *Canvas) WritePixel(x, y int, clr core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = clr
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// channel to [0, 1].
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: channelByte(p.R),
				G: channelByte(p.G),
				B: channelByte(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the canvas in plain PPM (P3) format
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			if _, err := fmt.Fprintf(w, "%d %d %d\n",
				channelByte(p.R), channelByte(p.G), channelByte(p.B)); err != nil {
				return err
			}
		}
	}
	return nil
}

func channelByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
