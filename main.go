package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	depth := flag.Int("depth", world.DefaultMaxDepth, "Maximum reflection/refraction depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = NumCPU)")
	out := flag.String("out", "", "Output PNG path (default render_<scene>.png)")
	ppm := flag.Bool("ppm", false, "Write plain PPM instead of PNG")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	s, err := scene.ByName(*sceneName, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %q at %dx%d, depth %d...\n", *sceneName, *width, *height, *depth)
	start := time.Now()
	canvas := renderer.Render(s.Camera, s.World, renderer.Options{
		Workers:  *workers,
		MaxDepth: *depth,
	})
	fmt.Printf("Render completed in %v\n", time.Since(start))

	filename := outputFilename(*out, *sceneName, *ppm)
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if *ppm {
		err = canvas.WritePPM(file)
	} else {
		err = png.Encode(file, canvas.ToImage())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// outputFilename resolves the output path, deriving one from the scene
// name when none was given.
func outputFilename(out, sceneName string, ppm bool) string {
	if out != "" {
		return out
	}
	ext := "png"
	if ppm {
		ext = "ppm"
	}
	return fmt.Sprintf("render_%s.%s", sceneName, ext)
}
