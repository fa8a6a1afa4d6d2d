// Command preview opens a window and shows the render as it progresses,
// row by row.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

type previewGame struct {
	width  int
	height int

	mu  sync.Mutex
	img *image.RGBA
}

func newPreviewGame(width, height int) *previewGame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &previewGame{width: width, height: height, img: img}
}

func (g *previewGame) Update() error {
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.WritePixels(g.img.Pix)
}

func (g *previewGame) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// copyRow transfers one finished canvas row into the displayed image.
// Each worker only ever touches the row it just rendered.
func (g *previewGame) copyRow(canvas *renderer.Canvas, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for x := 0; x < canvas.Width; x++ {
		p := canvas.PixelAt(x, y)
		g.img.Set(x, y, color.RGBA{
			R: clamp8(p.R),
			G: clamp8(p.G),
			B: clamp8(p.B),
			A: 255,
		})
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	depth := flag.Int("depth", world.DefaultMaxDepth, "Maximum reflection/refraction depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = NumCPU)")
	flag.Parse()

	s, err := scene.ByName(*sceneName, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game := newPreviewGame(*width, *height)

	go func() {
		renderer.Render(s.Camera, s.World, renderer.Options{
			Workers:  *workers,
			MaxDepth: *depth,
			OnRow:    game.copyRow,
		})
		log.Printf("render of %q finished", *sceneName)
	}()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Whitted Raytracer - " + *sceneName)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
