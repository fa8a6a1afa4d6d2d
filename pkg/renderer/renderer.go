package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Options configures a render pass
type Options struct {
	// Workers is the number of concurrent workers; <= 0 means NumCPU.
	Workers int
	// MaxDepth bounds the reflection/refraction recursion; <= 0 means
	// world.DefaultMaxDepth.
	MaxDepth int
	// OnRow, if set, is called after each finished row with the canvas
	// being rendered and the row index. Called from worker goroutines;
	// only the given row is guaranteed to be fully written.
	OnRow func(canvas *Canvas, y int)
}

// Render traces every pixel of the camera's canvas against the world.
// Rows are distributed over a worker pool; the world and camera are
// read-only during the pass and each worker writes disjoint rows, so the
// output is deterministic regardless of worker count.
func Render(camera *Camera, w *world.World, opts Options) *Canvas {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = world.DefaultMaxDepth
	}

	canvas := NewCanvas(camera.HSize, camera.VSize)
	rows := make(chan int, camera.VSize)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(camera, w, canvas, y, maxDepth)
				if opts.OnRow != nil {
					opts.OnRow(canvas, y)
				}
			}
		}()
	}

	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return canvas
}

func renderRow(camera *Camera, w *world.World, canvas *Canvas, y, maxDepth int) {
	for x := 0; x < camera.HSize; x++ {
		ray := camera.RayForPixel(x, y)
		canvas.WritePixel(x, y, w.ColorAt(ray, maxDepth))
	}
}
