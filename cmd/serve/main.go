// Command serve exposes the raytracer over HTTP: GET /render returns a
// finished PNG, GET /scenes lists the available scene names.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	http.HandleFunc("/render", handleRender)
	http.HandleFunc("/scenes", handleScenes)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Listening on http://localhost%s (try /render?scene=default&width=400&height=250)", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleRender(w http.ResponseWriter, r *http.Request) {
	name := queryString(r, "scene", "default")
	width := queryInt(r, "width", 400)
	height := queryInt(r, "height", 250)
	depth := queryInt(r, "depth", world.DefaultMaxDepth)

	if width < 1 || height < 1 || width*height > 4096*4096 {
		http.Error(w, "invalid dimensions", http.StatusBadRequest)
		return
	}

	s, err := scene.ByName(name, width, height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	canvas := renderer.Render(s.Camera, s.World, renderer.Options{MaxDepth: depth})
	log.Printf("rendered %q %dx%d in %v", name, width, height, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, canvas.ToImage()); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func handleScenes(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scene.Names()); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func queryString(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
